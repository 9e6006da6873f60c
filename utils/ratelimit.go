// utils/ratelimit.go
package utils

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitStore counts requests per client within a sliding window. The
// bundled implementation is an in-memory map; a shared cache can be swapped
// in behind this interface for multi-instance deployments.
type RateLimitStore interface {
	// Take records a hit for key at time now and reports whether the hit is
	// within the allowed budget for the window.
	Take(key string, now time.Time, max int, window time.Duration) bool
}

// MemoryRateLimitStore keeps per-key hit timestamps guarded by a mutex.
type MemoryRateLimitStore struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{hits: make(map[string][]time.Time)}
}

func (s *MemoryRateLimitStore) Take(key string, now time.Time, max int, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-window)
	kept := s.hits[key][:0]
	for _, t := range s.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= max {
		s.hits[key] = kept
		return false
	}

	s.hits[key] = append(kept, now)
	return true
}

// Prune drops keys whose every hit has aged out of the window. Called
// periodically so idle clients do not accumulate forever.
func (s *MemoryRateLimitStore) Prune(now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-window)
	removed := 0
	for key, times := range s.hits {
		stale := true
		for _, t := range times {
			if t.After(cutoff) {
				stale = false
				break
			}
		}
		if stale {
			delete(s.hits, key)
			removed++
		}
	}
	return removed
}

// StartPruning runs Prune every interval until the returned stop function
// is called.
func (s *MemoryRateLimitStore) StartPruning(interval, window time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				s.Prune(now, window)
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

// RateLimitMiddleware limits each client IP to max requests per window,
// responding 429 with the standard envelope on excess.
func RateLimitMiddleware(store RateLimitStore, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Take(c.ClientIP(), time.Now(), max, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
				Success: false,
				Message: "Too many requests, please try again later",
				Data:    nil,
			})
			return
		}
		c.Next()
	}
}
