package ratelimit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/cache"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewLimiter(&cache.Client{Client: rdb}, slog.Default()), mr
}

func TestAllowWithinBudget(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	bucket := Bucket{Name: "test", PerMin: 3}
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, bucket, "org-1"), "request %d", i)
	}
	assert.False(t, l.Allow(ctx, bucket, "org-1"))
}

func TestBucketsAreIndependentPerOrg(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	bucket := Bucket{Name: "test", PerMin: 1}
	require.True(t, l.Allow(ctx, bucket, "org-1"))
	require.False(t, l.Allow(ctx, bucket, "org-1"))

	// Another org's budget is untouched.
	assert.True(t, l.Allow(ctx, bucket, "org-2"))
}

func TestBucketsAreIndependentPerName(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	a := Bucket{Name: "a", PerMin: 1}
	b := Bucket{Name: "b", PerMin: 1}
	require.True(t, l.Allow(ctx, a, "org-1"))
	require.False(t, l.Allow(ctx, a, "org-1"))
	assert.True(t, l.Allow(ctx, b, "org-1"))
}

func TestWindowKeyCarriesExpiry(t *testing.T) {
	l, mr := newTestLimiter(t)

	bucket := Bucket{Name: "test", PerMin: 5}
	require.True(t, l.Allow(context.Background(), bucket, "org-1"))

	key := windowKey("test", "org-1", time.Now())
	require.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestSlidingWindowSpansMinuteBoundary(t *testing.T) {
	l, _ := newTestLimiter(t)

	base := time.Unix(1724500000, 0).Truncate(time.Minute)
	now := base.Add(30 * time.Second)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	bucket := Bucket{Name: "test", PerMin: 10}
	for i := 0; i < 10; i++ {
		require.True(t, l.Allow(ctx, bucket, "org-1"), "request %d", i)
	}
	require.False(t, l.Allow(ctx, bucket, "org-1"))

	// 15s into the next minute the previous counter (11 hits) still weighs
	// in at 75%, so only one fresh request fits the budget. A fixed window
	// would admit all ten again here.
	now = base.Add(75 * time.Second)
	assert.True(t, l.Allow(ctx, bucket, "org-1"))
	assert.False(t, l.Allow(ctx, bucket, "org-1"))

	// Once the loaded minute is no longer "previous" the full budget returns.
	now = base.Add(2*time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, bucket, "org-1"))
}

func TestWindowRollsOver(t *testing.T) {
	now := time.Unix(1724500000, 0)
	later := now.Add(time.Minute)
	assert.NotEqual(t, windowKey("test", "org-1", now), windowKey("test", "org-1", later))
	assert.Equal(t, windowKey("test", "org-1", now), windowKey("test", "org-1", now.Add(10*time.Second)))
}

func TestFailOpenWhenCacheDown(t *testing.T) {
	l, mr := newTestLimiter(t)
	mr.Close()

	bucket := Bucket{Name: "test", PerMin: 1}
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), bucket, "org-1"))
	}
}

func TestNilCachePasses(t *testing.T) {
	l := NewLimiter(nil, slog.Default())
	assert.True(t, l.Allow(context.Background(), BucketAPI, "org-1"))
}
