package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/domains/notification/repository"
)

type notificationService struct {
	repo repository.Repository
}

func NewNotificationService(repo repository.Repository) Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) NotifyTx(ctx context.Context, tx pgx.Tx, recipientID, actorID uuid.UUID, verb, targetType string, targetID uuid.UUID) error {
	return s.repo.CreateTx(ctx, tx, &model.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	})
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, page, pageSize int) ([]model.Notification, int64, int64, error) {
	notifications, total, err := s.repo.ListByRecipient(ctx, recipientID, page, pageSize)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, 0, 0, err
	}

	return notifications, total, unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*model.Notification, error) {
	return s.repo.MarkRead(ctx, recipientID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, recipientID)
}
