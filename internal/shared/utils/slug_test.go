package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Smith", "jane-smith"},
		{"  Ursula K. Le Guin  ", "ursula-k-le-guin"},
		{"J.R.R. Tolkien", "jrr-tolkien"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"UPPER lower", "upper-lower"},
		{"100 Years of Solitude!", "100-years-of-solitude"},
		{"---edge---", "edge"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
