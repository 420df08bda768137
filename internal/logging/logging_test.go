package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", DefaultLevel},
		{"verbose", DefaultLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeLevel(tt.in), "level %q", tt.in)
	}
}

func TestForPrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := For("batch")
	logger.SetOutput(&buf)
	logger.SetLevel(LevelInfo)

	logger.Info("dispatched")

	assert.True(t, strings.Contains(buf.String(), "[batch] dispatched"), buf.String())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing to see")
}
