package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	reqID := "test-request-id-123"

	t.Run("WithRequestID", func(t *testing.T) {
		ctxWithID := WithRequestID(ctx, reqID)
		assert.Equal(t, reqID, RequestIDFrom(ctxWithID))
	})

	t.Run("RequestIDFrom empty context", func(t *testing.T) {
		assert.Equal(t, "", RequestIDFrom(ctx))
	})

	t.Run("FromCtx without request id", func(t *testing.T) {
		assert.NotNil(t, FromCtx(ctx))
	})

	t.Run("FromCtx with request id", func(t *testing.T) {
		ctxWithID := WithRequestID(ctx, reqID)
		assert.NotNil(t, FromCtx(ctxWithID))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates id when missing", func(t *testing.T) {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		RequestIDMiddleware(next).ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
	})

	t.Run("Keeps provided id", func(t *testing.T) {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		RequestIDMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	LoggingMiddleware(next).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
