package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	assert.Equal(t, http.StatusOK, post("10.0.0.2"))
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	start := time.Now()
	limiter.now = func() time.Time { return start }
	limiter.allow("a")

	limiter.now = func() time.Time { return start.Add(2 * limiterIdleTTL) }
	limiter.allow("b")
	limiter.Cleanup()

	assert.NotContains(t, limiter.limiters, "a")
	assert.Contains(t, limiter.limiters, "b")
}
