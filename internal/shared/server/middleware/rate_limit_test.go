package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost {
		return "PLAN_BUILD"
	}
	return DefaultRateLimitGroup
}

func newLimitedRouter(limiter *RateLimiter, rules map[string]RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(), RateLimit(RateLimitConfig{
		GroupFor: planGroup,
		Limiter:  limiter,
		Rules:    rules,
	}))
	r.POST("/api/v1/plans", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })
	r.GET("/api/v1/plans/:id", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func serve(r http.Handler, method, path, profile string) *httptest.ResponseRecorder {
	return serveFrom(r, method, path, profile, "")
}

func serveFrom(r http.Handler, method, path, profile, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	if profile != "" {
		req.Header.Set("X-Profile-Id", profile)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimitPlanBuildsSeparateFromReads(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(func() time.Time { return now }), map[string]RateLimitRule{
		"PLAN_BUILD":          {Rate: 1, Burst: 2},
		DefaultRateLimitGroup: {Rate: 5, Burst: 10},
	})

	for i := 0; i < 3; i++ {
		resp := serve(r, http.MethodGet, "/api/v1/plans/p-1", "profile-a")
		require.Equal(t, http.StatusOK, resp.Code, "read %d", i+1)
	}
	for i := 0; i < 2; i++ {
		resp := serve(r, http.MethodPost, "/api/v1/plans", "profile-a")
		require.Equal(t, http.StatusCreated, resp.Code, "build %d", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/v1/plans", "profile-a").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/plans/p-1", "profile-a").Code)
}

func TestRateLimitIgnoresRotatingProfileHeader(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(func() time.Time { return now }), map[string]RateLimitRule{
		"PLAN_BUILD": {Rate: 1, Burst: 2},
	})

	const addr = "203.0.113.7:40000"
	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		profile := fmt.Sprintf("profile-%d", i)
		codes = append(codes, serveFrom(r, http.MethodPost, "/api/v1/plans", profile, addr).Code)
	}
	assert.Equal(t, []int{
		http.StatusCreated,
		http.StatusCreated,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)

	other := serveFrom(r, http.MethodPost, "/api/v1/plans", "profile-0", "198.51.100.9:40000")
	assert.Equal(t, http.StatusCreated, other.Code)
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(func() time.Time { return now }), map[string]RateLimitRule{
		"PLAN_BUILD": {Rate: 1, Burst: 1},
	})

	require.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/api/v1/plans", "").Code)
	resp := serve(r, http.MethodPost, "/api/v1/plans", "")
	require.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Equal(t, "1", resp.Header().Get("Retry-After"))

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "rate_limited", payload.Error.Code)
	assert.EqualValues(t, 1000, payload.Error.Details["retryAfterMs"])
}

func TestRateLimiterRefills(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 2, Burst: 1}

	ok, _ := limiter.Allow("k", rule)
	require.True(t, ok)
	ok, wait := limiter.Allow("k", rule)
	require.False(t, ok)
	assert.Equal(t, 500*time.Millisecond, wait)

	now = now.Add(500 * time.Millisecond)
	ok, _ = limiter.Allow("k", rule)
	assert.True(t, ok)
}
