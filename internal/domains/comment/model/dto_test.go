package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "meaningful comment passes",
			content: "This chapter completely changed how I read the rest of the book.",
		},
		{
			name:    "exactly ten characters passes",
			content: " 0123456789 ", // trims to 10
		},
		{
			name:    "too short after trim",
			content: "   short   ",
			wantErr: "Comment must be at least 10 characters long.",
		},
		{
			name:    "empty content",
			content: "",
			wantErr: "content is required",
		},
		{
			name:    "too long",
			content: strings.Repeat("a", 1001),
			wantErr: "Comment cannot exceed 1000 characters.",
		},
		{
			name:    "denylisted word rejected regardless of case",
			content: "   SPAM   ",
			wantErr: "Please write a meaningful comment.",
		},
		{
			name:    "denylisted word rejected before length check",
			content: "hello     ",
			wantErr: "Please write a meaningful comment.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateCommentRequest{Content: tt.content}.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMeaningfulContentDenylist(t *testing.T) {
	for _, word := range []string{"spam", "test", "hello", "hi", "SPAM", "Hello"} {
		err := meaningfulContent(word + strings.Repeat(" ", 12))
		assert.Error(t, err, "expected %q to be rejected", word)
		if err != nil {
			assert.Contains(t, err.Error(), "Please write a meaningful comment.")
		}
	}
}

func TestUpdateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateCommentRequest{Content: "Rereading this with fresh eyes was worth it."}.Validate())
	assert.Error(t, UpdateCommentRequest{Content: "short"}.Validate())
	assert.Error(t, UpdateCommentRequest{Content: ""}.Validate())
}
