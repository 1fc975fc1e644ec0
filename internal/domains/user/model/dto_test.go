package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username: "book_worm42",
		Email:    "worm@example.com",
		Password: "correct horse battery",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validRegisterRequest().Validate())
	})

	t.Run("username too short", func(t *testing.T) {
		req := validRegisterRequest()
		req.Username = "ab"
		assert.Error(t, req.Validate())
	})

	t.Run("username with illegal characters", func(t *testing.T) {
		req := validRegisterRequest()
		req.Username = "book worm!"
		assert.Error(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := validRegisterRequest()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		req := validRegisterRequest()
		req.Password = "1234567"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateRoleRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateRoleRequest{Role: "editor"}.Validate())
	assert.NoError(t, UpdateRoleRequest{Role: "librarian"}.Validate())
	assert.Error(t, UpdateRoleRequest{Role: "superuser"}.Validate())
	assert.Error(t, UpdateRoleRequest{Role: ""}.Validate())
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	email := "new@example.com"
	bad := "nope"
	assert.NoError(t, UpdateProfileRequest{Email: &email}.Validate())
	assert.NoError(t, UpdateProfileRequest{}.Validate())
	assert.Error(t, UpdateProfileRequest{Email: &bad}.Validate())
}
