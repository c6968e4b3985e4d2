package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		first string
		last  string
	}{
		{"con espacio", "John Doe", "John", "Doe"},
		{"varios tokens", "Mary Jane Watson", "Mary", "Jane Watson"},
		{"username pegado", "JohnDoe", "John", "Doe"},
		{"pegado con tres corridas", "JohnDoeSmith", "John", "DoeSmith"},
		{"vacío", "", "Unknown", "Unknown"},
		{"solo espacios", "   ", "Unknown", "Unknown"},
		{"todo minúsculas", "johndoe", "johndoe", "Unknown"},
		{"un solo nombre", "John", "John", "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last := SplitName(tc.in)
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
		})
	}
}
