package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	appLogger "github.com/zenai/backend/pkg/logger"
)

func TestAttachReusesIncomingRequestID(t *testing.T) {
	reqCtx := &fasthttp.RequestCtx{}
	reqCtx.Request.Header.Set("X-Request-ID", "req-7")

	adapter := NewAdapter(time.Second)
	stdCtx, cancel := adapter.Attach(reqCtx)
	defer cancel()

	assert.Equal(t, "req-7", appLogger.RequestIDFromContext(stdCtx))
	assert.Equal(t, "req-7", string(reqCtx.Response.Header.Peek("X-Request-ID")))
}

func TestAttachMintsRequestIDWhenMissing(t *testing.T) {
	reqCtx := &fasthttp.RequestCtx{}

	adapter := NewAdapter(time.Second)
	stdCtx, cancel := adapter.Attach(reqCtx)
	defer cancel()

	reqID := appLogger.RequestIDFromContext(stdCtx)
	require.NotEmpty(t, reqID)
	assert.Equal(t, reqID, string(reqCtx.Response.Header.Peek("X-Request-ID")))
}

func TestAttachAppliesDeadline(t *testing.T) {
	adapter := NewAdapter(time.Second)
	stdCtx, cancel := adapter.Attach(&fasthttp.RequestCtx{})
	defer cancel()

	deadline, ok := stdCtx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 200*time.Millisecond)
}
