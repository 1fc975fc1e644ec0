package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookclub-backend/internal/config"
	infracache "bookclub-backend/internal/infrastructure/cache"
	"bookclub-backend/internal/infrastructure/database"
	"bookclub-backend/pkg/cache"
	"bookclub-backend/pkg/jwt"

	authorHandler "bookclub-backend/internal/domains/author/handler"
	authorRepo "bookclub-backend/internal/domains/author/repository"
	authorService "bookclub-backend/internal/domains/author/service"
	bookHandler "bookclub-backend/internal/domains/book/handler"
	bookRepo "bookclub-backend/internal/domains/book/repository"
	bookService "bookclub-backend/internal/domains/book/service"
	commentHandler "bookclub-backend/internal/domains/comment/handler"
	commentRepo "bookclub-backend/internal/domains/comment/repository"
	commentService "bookclub-backend/internal/domains/comment/service"
	notificationHandler "bookclub-backend/internal/domains/notification/handler"
	notificationRepo "bookclub-backend/internal/domains/notification/repository"
	notificationService "bookclub-backend/internal/domains/notification/service"
	postHandler "bookclub-backend/internal/domains/post/handler"
	postRepo "bookclub-backend/internal/domains/post/repository"
	postService "bookclub-backend/internal/domains/post/service"
	socialHandler "bookclub-backend/internal/domains/social/handler"
	socialRepo "bookclub-backend/internal/domains/social/repository"
	socialService "bookclub-backend/internal/domains/social/service"
	userHandler "bookclub-backend/internal/domains/user/handler"
	userRepo "bookclub-backend/internal/domains/user/repository"
	userService "bookclub-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Initialization order
// is config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo         userRepo.Repository
	AuthorRepo       authorRepo.Repository
	BookRepo         bookRepo.Repository
	PostRepo         postRepo.Repository
	CommentRepo      commentRepo.Repository
	SocialRepo       socialRepo.Repository
	NotificationRepo notificationRepo.Repository

	UserService         userService.Service
	AuthorService       authorService.Service
	BookService         bookService.Service
	PostService         postService.Service
	CommentService      commentService.Service
	SocialService       socialService.Service
	NotificationService notificationService.Service

	UserHandler         *userHandler.UserHandler
	AuthorHandler       *authorHandler.AuthorHandler
	BookHandler         *bookHandler.BookHandler
	PostHandler         *postHandler.PostHandler
	CommentHandler      *commentHandler.CommentHandler
	SocialHandler       *socialHandler.SocialHandler
	NotificationHandler *notificationHandler.NotificationHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("database connected")

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Cache misses degrade to database reads, so keep booting.
		log.Warn().Err(err).Msg("redis connection failed, continuing without cache warm-up")
	} else {
		log.Info().Msg("redis connected")
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()
	log.Info().Msg("container initialized")

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.SocialRepo = socialRepo.NewPostgresRepository(pool)
	c.NotificationRepo = notificationRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	pool := c.DB.Pool

	c.NotificationService = notificationService.NewNotificationService(c.NotificationRepo)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.PostService = postService.NewPostService(c.PostRepo)

	// The post repository doubles as the post-owner resolver and feed
	// source for the comment and social services.
	c.CommentService = commentService.NewCommentService(c.CommentRepo, pool, c.PostRepo, c.NotificationService)
	c.SocialService = socialService.NewSocialService(c.SocialRepo, pool, c.PostRepo, c.PostRepo, c.NotificationService)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService, c.CommentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.SocialHandler = socialHandler.NewSocialHandler(c.SocialService)
	c.NotificationHandler = notificationHandler.NewNotificationHandler(c.NotificationService)
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
