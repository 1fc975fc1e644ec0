package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "lowercases and trims",
			in:   []string{" Fantasy ", "SCIFI"},
			want: []string{"fantasy", "scifi"},
		},
		{
			name: "drops duplicates keeping first occurrence",
			in:   []string{"go", "GO", " go "},
			want: []string{"go"},
		},
		{
			name: "drops empties",
			in:   []string{"", "   ", "poetry"},
			want: []string{"poetry"},
		},
		{
			name: "nil stays empty",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeTags(tt.in))
		})
	}
}
