package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

const minIdleTTL = 10 * time.Minute

// Local keeps one token bucket per key in process memory. Buckets idle for
// longer than the time a full refill takes are swept, so the map stays bounded
// by the keys active within that window.
type Local struct {
	mu        sync.Mutex
	limiters  map[string]*localEntry
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocal(requestsPerSecond float64, burst int) *Local {
	if burst <= 0 {
		burst = 1
	}
	idleTTL := minIdleTTL
	if requestsPerSecond > 0 {
		refill := time.Duration(float64(burst) / requestsPerSecond * float64(time.Second))
		if refill > idleTTL {
			idleTTL = refill
		}
	}
	return &Local{
		limiters: make(map[string]*localEntry),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (l *Local) Allow(_ context.Context, key string) bool {
	if l == nil || key == "" {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)
	entry, ok := l.limiters[key]
	if !ok {
		entry = &localEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// Len reports how many keys currently hold a bucket.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// sweepLocked drops idle buckets at most once per idleTTL. An evicted bucket
// would have refilled to burst anyway, so eviction never grants extra tokens.
func (l *Local) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) >= l.idleTTL {
			delete(l.limiters, key)
		}
	}
}

const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const redisTimeout = 250 * time.Millisecond

// Redis is a fixed-window counter shared by every API replica. It fails open
// when Redis is unreachable.
type Redis struct {
	client *redis.Client
	script *redis.Script
	prefix string
	limit  int
	window time.Duration
	logger *slog.Logger
}

// NewRedis allows the larger of burst and requestsPerSecond per one-second window.
func NewRedis(client *redis.Client, prefix string, requestsPerSecond float64, burst int, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	limit := int(math.Ceil(requestsPerSecond))
	if burst > limit {
		limit = burst
	}
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &Redis{
		client: client,
		script: redis.NewScript(fixedWindowScript),
		prefix: prefix,
		limit:  limit,
		window: time.Second,
		logger: logger,
	}
}

func (l *Redis) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil || key == "" || l.limit <= 0 {
		return true
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + ":" + key}, l.window.Milliseconds(), l.limit).Int64()
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request",
			"event", "rate_limit_redis_failed",
			"module", "platform/ratelimit",
			"layer", "platform",
			"error", err.Error(),
		)
		return true
	}
	return allowed == 1
}
