package http

import (
	"math"
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Tokens refill continuously at
// requests/window instead of snapping back at window boundaries, so a burst
// does not earn a fresh full bucket one window later.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    float64
	refillRate  float64 // tokens per second
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
}

func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    float64(requests),
		refillRate:  float64(requests) / window.Seconds(),
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

// Allow reports whether the client may proceed. When it may not, retryAfter
// is how long until the bucket holds a whole token again.
func (r *RateLimiter) Allow(ip string) (allowed bool, retryAfter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:   r.capacity - 1,
			lastSeen: now,
		}
		return true, 0
	}

	bucket.tokens += now.Sub(bucket.lastSeen).Seconds() * r.refillRate
	if bucket.tokens > r.capacity {
		bucket.tokens = r.capacity
	}
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		wait := (1 - bucket.tokens) / r.refillRate
		return false, time.Duration(math.Ceil(wait)) * time.Second
	}

	bucket.tokens--
	return true, 0
}
