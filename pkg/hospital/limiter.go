package hospital

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-display rate limiters: display_id -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(displayID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[displayID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[displayID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(displayID string, displayRate rate.Limit, displayBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[displayID] = rate.NewLimiter(displayRate, displayBurst)
}
