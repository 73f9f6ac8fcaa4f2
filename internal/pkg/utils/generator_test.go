package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTransactionID(t *testing.T) {
	t.Run("Prefix followed by digits only", func(t *testing.T) {
		id, err := GenerateTransactionID("SANGHA")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "SANGHA"))
		assert.Regexp(t, regexp.MustCompile(`^SANGHA\d+$`), id)
	})

	t.Run("No collisions across a burst", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, err := GenerateTransactionID("SANGHA")
			assert.NoError(t, err)
			assert.False(t, seen[id], "duplicate transaction ID %s", id)
			seen[id] = true
		}
	})
}

func TestGenerateDigits(t *testing.T) {
	digits, err := GenerateDigits(6)
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), digits)
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
