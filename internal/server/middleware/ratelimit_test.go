package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/pkg/api"
)

// newTestLimiter создает limiter с управляемыми часами
func newTestLimiter(t *testing.T, rate int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(rate, window, zap.NewNop())
	t.Cleanup(rl.Stop)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)
		for i := 0; i < 3; i++ {
			ok, wait := rl.Allow("10.0.0.1")
			assert.True(t, ok, "request %d", i+1)
			assert.Zero(t, wait)
		}
	})

	t.Run("over limit reports wait", func(t *testing.T) {
		rl, now := newTestLimiter(t, 2, time.Minute)
		rl.Allow("10.0.0.1")
		rl.Allow("10.0.0.1")

		*now = now.Add(20 * time.Second)
		ok, wait := rl.Allow("10.0.0.1")
		assert.False(t, ok)
		assert.Equal(t, 40*time.Second, wait)
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)
		ok, _ := rl.Allow("a")
		assert.True(t, ok)
		ok, _ = rl.Allow("a")
		assert.False(t, ok)
		ok, _ = rl.Allow("b")
		assert.True(t, ok)
	})

	t.Run("refill after window", func(t *testing.T) {
		rl, now := newTestLimiter(t, 1, time.Minute)
		rl.Allow("a")
		ok, _ := rl.Allow("a")
		require.False(t, ok)

		*now = now.Add(time.Minute)
		ok, _ = rl.Allow("a")
		assert.True(t, ok)
	})
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)
	rl.Allow("old")
	*now = now.Add(90 * time.Second)
	rl.Allow("fresh")

	*now = now.Add(45 * time.Second)
	rl.cleanupOldBuckets()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "old")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, nil)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl, _ := newTestLimiter(t, 50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 30*time.Second)
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clubs", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Too Many Requests", resp.Error)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		want       string
	}{
		{name: "remote addr with port", remoteAddr: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "remote addr without port", remoteAddr: "192.168.1.1", want: "192.168.1.1"},
		{name: "forwarded for single", remoteAddr: "10.0.0.1:1", headers: map[string]string{"X-Forwarded-For": "203.0.113.1"}, want: "203.0.113.1"},
		{name: "forwarded for chain", remoteAddr: "10.0.0.1:1", headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 70.41.3.18"}, want: "203.0.113.1"},
		{name: "real ip", remoteAddr: "10.0.0.1:1", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
