package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("calling %s", "https://example.com")
	logger.Info("informational")
	assert.Empty(t, buf.String())

	logger.Error("request failed with %d", 404)
	assert.Contains(t, buf.String(), "request failed with 404")
	assert.Contains(t, buf.String(), "ERR")
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.Debug("calling %s", "https://example.com")
	assert.Contains(t, buf.String(), "calling https://example.com")
	assert.Contains(t, buf.String(), "app="+ApplicationName)
}

func TestWith_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true).With("trace", "abc123")

	logger.Warn("slow response")
	assert.Contains(t, buf.String(), "trace=abc123")
	assert.Contains(t, buf.String(), "slow response")
}

func TestFromContext(t *testing.T) {
	// No logger stored: falls back to a no-op logger
	assert.IsType(t, &noopLogger{}, FromContext(context.Background()))

	var buf bytes.Buffer
	logger := New(&buf, true)
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
