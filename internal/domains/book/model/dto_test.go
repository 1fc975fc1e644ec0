package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBookRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:           "The Left Hand of Darkness",
		PublicationYear: 1969,
		AuthorID:        uuid.New(),
		Price:           decimal.NewFromFloat(12.50),
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validCreateBookRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("current year is allowed", func(t *testing.T) {
		req := validCreateBookRequest()
		req.PublicationYear = time.Now().Year()
		assert.NoError(t, req.Validate())
	})

	t.Run("future year is rejected", func(t *testing.T) {
		req := validCreateBookRequest()
		req.PublicationYear = time.Now().Year() + 1

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Publication year cannot be in the future.")
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		req := validCreateBookRequest()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("missing author is rejected", func(t *testing.T) {
		req := validCreateBookRequest()
		req.AuthorID = uuid.Nil
		assert.Error(t, req.Validate())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		req := validCreateBookRequest()
		req.Price = decimal.NewFromFloat(-0.01)
		assert.Error(t, req.Validate())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		req := validCreateBookRequest()
		req.Price = decimal.Zero
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateBookRequestValidate(t *testing.T) {
	t.Run("empty patch passes", func(t *testing.T) {
		assert.NoError(t, UpdateBookRequest{}.Validate())
	})

	t.Run("future year is rejected", func(t *testing.T) {
		year := time.Now().Year() + 5
		req := UpdateBookRequest{PublicationYear: &year}

		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Publication year cannot be in the future.")
	})

	t.Run("negative price pointer is rejected", func(t *testing.T) {
		price := decimal.NewFromInt(-3)
		req := UpdateBookRequest{Price: &price}
		assert.Error(t, req.Validate())
	})

	t.Run("empty title pointer is rejected", func(t *testing.T) {
		title := ""
		req := UpdateBookRequest{Title: &title}
		assert.Error(t, req.Validate())
	})
}
