package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBucket_Burst(t *testing.T) {
	b := newBucket(60, time.Minute, 10) // 1 token per second, burst 10
	now := time.Now()

	for i := 0; i < 10; i++ {
		if !b.limiter.AllowN(now, 1) {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if b.limiter.AllowN(now, 1) {
		t.Error("Expected 11th request to be denied")
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(60, time.Minute, 10)
	now := time.Now()

	for i := 0; i < 10; i++ {
		b.limiter.AllowN(now, 1)
	}

	later := now.Add(1100 * time.Millisecond)
	if !b.limiter.AllowN(later, 1) {
		t.Error("Expected request to be allowed after refill")
	}
	if b.limiter.AllowN(later, 1) {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestBucket_Status(t *testing.T) {
	b := newBucket(60, time.Minute, 10)
	now := time.Now()

	for i := 0; i < 5; i++ {
		b.limiter.AllowN(now, 1)
	}

	remaining, resetTime := b.status(now)
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if want := now.Add(5 * time.Second); resetTime.Sub(want).Abs() > time.Millisecond {
		t.Errorf("Expected reset at %v, got %v", want, resetTime)
	}
	if b.retryAfter(now) != 0 {
		t.Error("Expected no retry delay while tokens remain")
	}
}

func TestBucket_BurstDefaultsToLimit(t *testing.T) {
	b := newBucket(3, time.Minute, 0)
	if b.capacity != 3 {
		t.Errorf("Expected capacity 3, got %d", b.capacity)
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/skills"
	method := "POST"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
		if rateInfo.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, rateInfo.Remaining)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", rateInfo.Remaining)
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
	if !rateInfo.ResetTime.After(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/match", "POST")
		if !allowed {
			t.Errorf("Expected whitelisted request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 for whitelisted, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("192.168.1.1", "/match", "POST")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, rateInfo := limiter.Allow("127.0.0.1", "/rank", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
		if rateInfo.Limit != 0 {
			t.Errorf("Expected limit 0 when disabled, got %d", rateInfo.Limit)
		}
	}
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET"); !allowed {
			t.Fatalf("Expected health request %d to be allowed", i+1)
		}
	}
	if limiter.Len() != 0 {
		t.Errorf("Expected no buckets for health checks, got %d", limiter.Len())
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/rank", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 5; i++ {
		allowed, rateInfo := limiter.Allow(clientID, "/rank", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 5 {
			t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, "/rank", "POST")
	if allowed {
		t.Error("Expected 6th request to be denied")
	}
	if rateInfo.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", rateInfo.Limit)
	}

	// Different endpoint should use default limit
	allowed, rateInfo = limiter.Allow(clientID, "/vocabulary", "GET")
	if !allowed {
		t.Error("Expected different endpoint to be allowed")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.1", "/ats", "POST"); !allowed {
		t.Error("Expected first client to be allowed")
	}
	if allowed, _ := limiter.Allow("10.0.0.1", "/ats", "POST"); allowed {
		t.Error("Expected first client to be limited")
	}
	if allowed, _ := limiter.Allow("10.0.0.2", "/ats", "POST"); !allowed {
		t.Error("Expected second client to be allowed")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := limiter.Allow("127.0.0.1", "/skills", "POST")
			if allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/match", "POST")
	}
	if limiter.Len() != 10 {
		t.Fatalf("Expected 10 buckets, got %d", limiter.Len())
	}

	limiter.cleanupBuckets(time.Now())
	if limiter.Len() != 10 {
		t.Errorf("Expected recent buckets to survive cleanup, got %d", limiter.Len())
	}

	limiter.cleanupBuckets(time.Now().Add(2 * time.Minute))
	if limiter.Len() != 0 {
		t.Errorf("Expected idle buckets to be removed, got %d", limiter.Len())
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, rateInfo := limiter.Allow("127.0.0.1", "/match", "POST")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if rateInfo.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", rateInfo.Limit)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/rank", Method: "POST", Limit: 1},
		{Path: "/jobs/", Method: "POST", Limit: 2},
	}

	if got := MatchEndpoint("/rank", "POST", configs); got == nil || got.Limit != 1 {
		t.Errorf("Expected exact match, got %+v", got)
	}
	if got := MatchEndpoint("/jobs/42", "POST", configs); got == nil || got.Limit != 2 {
		t.Errorf("Expected prefix match, got %+v", got)
	}
	if got := MatchEndpoint("/rank", "GET", configs); got != nil {
		t.Errorf("Expected no match for other method, got %+v", got)
	}
	if got := MatchEndpoint("/health", "GET", configs); got == nil || got.Limit != 0 {
		t.Errorf("Expected unlimited health config, got %+v", got)
	}
}

func TestDefaultEndpointConfigs_RankIsStricter(t *testing.T) {
	rank := MatchEndpoint("/rank", "POST", DefaultEndpointConfigs())
	match := MatchEndpoint("/match", "POST", DefaultEndpointConfigs())
	if rank == nil || match == nil {
		t.Fatal("Expected both endpoints to be configured")
	}
	if rank.Limit >= match.Limit {
		t.Errorf("Expected /rank limit %d below /match limit %d", rank.Limit, match.Limit)
	}
}

func TestMatchEndpoint_Precedence(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/jobs/", Method: "*", Limit: 1},
		{Path: "/jobs/batch/", Method: "POST", Limit: 2},
		{Path: "/jobs/batch/run", Method: "*", Limit: 3},
		{Path: "/jobs/", Method: "GET", Limit: 4},
	}

	tests := []struct {
		path, method string
		want         int
	}{
		{"/jobs/1", "POST", 1},
		{"/jobs/1", "GET", 4},
		{"/jobs/batch/7", "POST", 2},
		{"/jobs/batch/7", "DELETE", 1},
		{"/jobs/batch/run", "POST", 3},
	}
	for _, tt := range tests {
		got := MatchEndpoint(tt.path, tt.method, configs)
		if got == nil || got.Limit != tt.want {
			t.Errorf("MatchEndpoint(%s %s) = %+v, want limit %d", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"RATE_LIMIT_DEFAULT_LIMIT":  "50",
		"RATE_LIMIT_DEFAULT_WINDOW": "30s",
		"RATE_LIMIT_IDLE_TTL":       "not-a-duration",
		"RATE_LIMIT_WHITELIST":      " 10.0.0.1, ,10.0.0.2",
		"RATE_LIMIT_BLACKLIST":      "192.0.2.1",
	}
	cfg := FromEnv(func(k string) string { return env[k] })

	if !cfg.Enabled {
		t.Fatal("Expected limiter to be enabled by default")
	}
	if cfg.DefaultLimit != 50 || cfg.DefaultWindow != 30*time.Second {
		t.Errorf("Expected 50 per 30s, got %d per %v", cfg.DefaultLimit, cfg.DefaultWindow)
	}
	if cfg.IdleTTL != time.Hour {
		t.Errorf("Expected invalid idle TTL to fall back to 1h, got %v", cfg.IdleTTL)
	}
	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("Expected default cleanup interval, got %v", cfg.CleanupInterval)
	}
	if len(cfg.Whitelist) != 2 || !cfg.Whitelist["10.0.0.1"] || !cfg.Whitelist["10.0.0.2"] {
		t.Errorf("Unexpected whitelist %v", cfg.Whitelist)
	}
	if !cfg.Blacklist["192.0.2.1"] {
		t.Errorf("Unexpected blacklist %v", cfg.Blacklist)
	}
	if len(cfg.EndpointConfigs) != len(DefaultEndpointConfigs()) {
		t.Errorf("Expected default endpoint configs, got %d", len(cfg.EndpointConfigs))
	}
}

func TestFromEnv_Disabled(t *testing.T) {
	cfg := FromEnv(func(k string) string {
		if k == "RATE_LIMIT_ENABLED" {
			return "false"
		}
		return ""
	})
	if cfg.Enabled {
		t.Error("Expected limiter to be disabled")
	}
}
