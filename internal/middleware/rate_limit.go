package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cookbook-service/internal/domain/dto"
	"github.com/guttosm/cookbook-service/internal/i18n"
)

// defaultNumShards spreads client IPs over independent locks.
const defaultNumShards = 16

// bucket holds the fixed-window state for one client.
type bucket struct {
	tokens      int
	windowStart time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*bucket
}

// take consumes a token for id, starting a fresh window when the
// current one has expired. Returns whether the request is allowed and
// how many tokens remain.
func (s *limiterShard) take(id string, rate int, window time.Duration) (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	b, ok := s.clients[id]
	if !ok || now.Sub(b.windowStart) > window {
		s.clients[id] = &bucket{tokens: rate - 1, windowStart: now}
		return true, rate - 1
	}
	if b.tokens <= 0 {
		return false, 0
	}
	b.tokens--
	return true, b.tokens
}

// ShardedRateLimiter is a fixed-window per-IP rate limiter sharded by
// FNV hash of the client IP to keep lock contention low.
type ShardedRateLimiter struct {
	shards []*limiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
}

// NewRateLimiter creates a limiter with the default shard count.
func NewRateLimiter(rate int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter creates a limiter with an explicit shard count.
// A background goroutine evicts stale clients until Stop is called.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	shards := make([]*limiterShard, numShards)
	for i := range shards {
		shards[i] = &limiterShard{clients: make(map[string]*bucket)}
	}

	rl := &ShardedRateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(id string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// RateLimit is the gin middleware enforcing the per-IP limit. Refused
// requests get a 429 with a localized message and a Retry-After header.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, remaining := rl.shardFor(ip).take(ip, rl.rate, rl.window)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", rl.window.String())
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}
		c.Next()
	}
}

func (rl *ShardedRateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictStale()
		case <-rl.stopCh:
			return
		}
	}
}

// evictStale drops clients whose window expired two windows ago.
func (rl *ShardedRateLimiter) evictStale() {
	now := time.Now()
	threshold := rl.window * 2

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, b := range shard.clients {
			if now.Sub(b.windowStart) > threshold {
				delete(shard.clients, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the background eviction goroutine.
func (rl *ShardedRateLimiter) Stop() {
	close(rl.stopCh)
}

// Stats reports the tracked client count in total and per shard.
func (rl *ShardedRateLimiter) Stats() (totalClients int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.clients)
		totalClients += perShard[i]
		shard.mu.Unlock()
	}
	return totalClients, perShard
}
