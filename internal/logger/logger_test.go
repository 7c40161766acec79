package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic even though output is discarded.
	log.Info().Str("key", "value").Msg("discarded")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromRequest_NoLoggerAttached(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	log := FromRequest(r)
	require.NotNil(t, log)
}
