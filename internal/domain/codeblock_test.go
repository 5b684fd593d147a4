package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"empty", "", true},
		{"placeholder", "<placeholder>", true},
		{"placeholder with newline", "<placeholder>\n", true},
		{"paste here", "<-- Paste here -->", true},
		{"paste here with newline", "<-- Paste here -->\n", true},
		{"real code", "def foo(): pass\n", false},
		{"placeholder with surrounding text", "x = 1\n<placeholder>\n", false},
		{"placeholder with two newlines", "<placeholder>\n\n", false},
		{"placeholder indented", "  <placeholder>\n", false},
		{"whitespace only", "\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlaceholder(tt.code))
		})
	}
}
