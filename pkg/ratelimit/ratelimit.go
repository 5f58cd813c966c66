// Package ratelimit enforces per-organization request quotas over a sliding
// one-minute window in the cache. A cache outage fails open: throttling is
// protection, not a correctness dependency.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agnox-io/agnox/pkg/cache"
)

// Bucket is one named quota.
type Bucket struct {
	Name    string
	PerMin  int
	Message string
}

// The producer's buckets. Ingest lifecycle calls are cheap but allocate
// rows; event batches are hot and get their own, larger budget.
var (
	BucketAPI = Bucket{
		Name:    "api",
		PerMin:  100,
		Message: "Too many requests, slow down",
	}
	BucketIngestLifecycle = Bucket{
		Name:    "ingest",
		PerMin:  100,
		Message: "Too many ingest sessions, slow down",
	}
	BucketIngestEvent = Bucket{
		Name:    "ingest-event",
		PerMin:  500,
		Message: "Event batches arriving too fast, slow down",
	}
)

// Limiter counts requests per (bucket, org, minute) key and weighs the
// current and previous minute into one sliding window.
type Limiter struct {
	cache  *cache.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewLimiter creates a Limiter. cacheClient may be nil; every check then
// passes.
func NewLimiter(cacheClient *cache.Client, logger *slog.Logger) *Limiter {
	return &Limiter{
		cache:  cacheClient,
		logger: logger.With("component", "ratelimit"),
		now:    time.Now,
	}
}

// Allow counts one request against the bucket and reports whether it fits
// the sliding window: the current minute's count plus the previous minute's
// count scaled by its unelapsed share. A request admitted under this weight
// cannot exceed the budget across a minute boundary the way a fixed window
// would. Cache errors log and admit the request.
func (l *Limiter) Allow(ctx context.Context, bucket Bucket, orgID string) bool {
	if l.cache == nil {
		return true
	}

	now := l.now()
	count, err := l.cache.Incr(ctx, windowKey(bucket.Name, orgID, now)).Result()
	if err != nil {
		l.logger.Warn("Rate limit check failed, admitting request",
			"bucket", bucket.Name, "org_id", orgID, "error", err)
		return true
	}
	if count == 1 {
		// First hit of the minute owns the expiry. 2x the window keeps the
		// counter readable while it is the "previous" minute.
		if err := l.cache.Expire(ctx, windowKey(bucket.Name, orgID, now), 2*time.Minute).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit expiry",
				"bucket", bucket.Name, "org_id", orgID, "error", err)
		}
	}

	previous, err := l.cache.Get(ctx, windowKey(bucket.Name, orgID, now.Add(-time.Minute))).Int64()
	if err != nil && err != redis.Nil {
		l.logger.Warn("Rate limit read failed, admitting request",
			"bucket", bucket.Name, "org_id", orgID, "error", err)
		return true
	}

	elapsed := now.Sub(now.Truncate(time.Minute)).Seconds() / 60
	weighted := float64(previous)*(1-elapsed) + float64(count)
	return weighted <= float64(bucket.PerMin)
}

func windowKey(bucket, orgID string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", bucket, orgID, now.Unix()/60)
}
