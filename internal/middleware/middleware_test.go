package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Allows requests within burst", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("X-Session-ID", "within-burst")

		for i := 0; i < burstGeneral; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("Blocks once burst is exhausted", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("X-Session-ID", "exhausted")

		var last int
		for i := 0; i < burstGeneral+5; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			last = rr.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Checkout uses the strict tier", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set("X-Session-ID", "strict-tier")

		var blocked bool
		for i := 0; i < burstStrict+1; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code == http.StatusTooManyRequests {
				blocked = true
			}
		}
		assert.True(t, blocked)
	})

	t.Run("Separate sessions get separate buckets", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		first := httptest.NewRequest(http.MethodGet, "/products", nil)
		first.Header.Set("X-Session-ID", "bucket-a")
		for i := 0; i < burstGeneral+5; i++ {
			handler.ServeHTTP(httptest.NewRecorder(), first)
		}

		second := httptest.NewRequest(http.MethodGet, "/products", nil)
		second.Header.Set("X-Session-ID", "bucket-b")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestResolveRateTier(t *testing.T) {
	checkout := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	_, _, tier := resolveRateTier(checkout)
	assert.Equal(t, "strict", tier)

	browse := httptest.NewRequest(http.MethodGet, "/products", nil)
	_, _, tier = resolveRateTier(browse)
	assert.Equal(t, "general", tier)
}
