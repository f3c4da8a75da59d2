package cache

import "github.com/conceptair/sizing-service/internal/domain/model"

// Cache defines the interface for sizing result cache operations. Keys are
// request fingerprints: a stable hash of the variant, mission profile, and
// solver tuning that produced the result.
type Cache interface {
	Get(key string) (*model.SizingResult, bool)
	Set(key string, value *model.SizingResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
