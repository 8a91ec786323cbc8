//go:build unit

package middleware

import (
	"net/http"
	"testing"
	"time"

	"delivery-booking/internal/pkg/config"
	"delivery-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func newTestLimiter(t *testing.T, rps float64, burst int) (*RateLimiter, *fakeNow) {
	t.Helper()

	r := NewRateLimiter(config.RateLimitConfig{RPS: rps, Burst: burst, IdleTTL: time.Minute})
	require.NotNil(t, r)

	clk := &fakeNow{t: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
	r.now = clk.now
	return r, clk
}

func TestNewRateLimiter_DisabledWhenRPSNotPositive(t *testing.T) {
	assert.Nil(t, NewRateLimiter(config.RateLimitConfig{RPS: 0, Burst: 5}))
	assert.Nil(t, NewRateLimiter(config.RateLimitConfig{RPS: -1, Burst: 5}))
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("burst then refill", func(t *testing.T) {
		r, clk := newTestLimiter(t, 1, 2)

		ok, _ := r.Allow("10.0.0.1")
		assert.True(t, ok)
		ok, _ = r.Allow("10.0.0.1")
		assert.True(t, ok)

		ok, wait := r.Allow("10.0.0.1")
		assert.False(t, ok)
		assert.Greater(t, wait, time.Duration(0))
		assert.LessOrEqual(t, wait, time.Second)

		clk.t = clk.t.Add(time.Second)
		ok, _ = r.Allow("10.0.0.1")
		assert.True(t, ok)
	})

	t.Run("keys are independent", func(t *testing.T) {
		r, _ := newTestLimiter(t, 1, 1)

		ok, _ := r.Allow("a")
		assert.True(t, ok)
		ok, _ = r.Allow("a")
		assert.False(t, ok)

		ok, _ = r.Allow("b")
		assert.True(t, ok)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("burst below one is raised to one", func(t *testing.T) {
		r, _ := newTestLimiter(t, 1, 0)

		ok, _ := r.Allow("a")
		assert.True(t, ok)
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	r, clk := newTestLimiter(t, 1, 1)

	r.Allow("stale")
	clk.t = clk.t.Add(45 * time.Second)
	r.Allow("fresh")
	clk.t = clk.t.Add(30 * time.Second)

	r.Cleanup()

	assert.Equal(t, 1, r.Len())
	r.mu.Lock()
	_, freshKept := r.entries["fresh"]
	r.mu.Unlock()
	assert.True(t, freshKept)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(r *RateLimiter) *gin.Engine {
		router := gin.New()
		router.POST("/book", r.Middleware(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return router
	}

	t.Run("429 with Retry-After once the bucket is empty", func(t *testing.T) {
		r, _ := newTestLimiter(t, 1, 1)
		router := newRouter(r)

		rec := httptest.PerformRequestFrom(t, router, http.MethodPost, "/book", nil, "192.0.2.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.PerformRequestFrom(t, router, http.MethodPost, "/book", nil, "192.0.2.1:1234")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})

		rec = httptest.PerformRequestFrom(t, router, http.MethodPost, "/book", nil, "192.0.2.2:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nil limiter lets everything through", func(t *testing.T) {
		var r *RateLimiter
		router := newRouter(r)

		for i := 0; i < 5; i++ {
			rec := httptest.PerformRequestFrom(t, router, http.MethodPost, "/book", nil, "192.0.2.1:1234")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
