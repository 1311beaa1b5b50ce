package cache

import (
	"container/list"
	"log/slog"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"product_viewer/pkg/logx"
)

const (
	DefaultCountLimit     = 50
	DefaultTotalCostLimit = 50 * 1024 * 1024
)

//nolint:gochecknoglobals
var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "product_viewer",
		Subsystem: "image_cache",
		Name:      "lookups_total",
		Help:      "Image cache lookups by result.",
	}, []string{"result"})
	cacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "product_viewer",
		Subsystem: "image_cache",
		Name:      "evictions_total",
		Help:      "Entries evicted to satisfy the count or cost limit.",
	})
)

type entry struct {
	key  string
	data []byte
}

// ImageCache is an in-memory key to bytes store bounded by entry count and
// by total cost, where the cost of an entry is its byte length. When an
// insertion would exceed either bound the least recently used entries are
// evicted first. A limit of zero or less disables that bound.
//
// Returned slices are shared with the cache and must not be modified.
type ImageCache struct {
	mu             sync.Mutex
	store          *gocache.Cache // key -> *list.Element holding *entry
	recency        *list.List     // front is most recently used
	totalCost      int
	countLimit     int
	totalCostLimit int
	logger         *slog.Logger
}

type Option func(*ImageCache)

func WithCountLimit(countLimit int) Option {
	return func(c *ImageCache) {
		c.countLimit = countLimit
	}
}

func WithTotalCostLimit(totalCostLimit int) Option {
	return func(c *ImageCache) {
		c.totalCostLimit = totalCostLimit
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *ImageCache) {
		c.logger = logger
	}
}

func NewImageCache(opts ...Option) *ImageCache {
	c := &ImageCache{
		store:          gocache.New(gocache.NoExpiration, 0),
		recency:        list.New(),
		countLimit:     DefaultCountLimit,
		totalCostLimit: DefaultTotalCostLimit,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the bytes cached under key and marks the entry as recently used.
func (c *ImageCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Get(key)
	if !ok {
		cacheLookups.WithLabelValues("miss").Inc()
		c.logger.Debug("image cache miss", slog.String(logx.FieldCacheKey, key))

		return nil, false
	}

	el := v.(*list.Element) //nolint:forcetypeassert
	c.recency.MoveToFront(el)

	cacheLookups.WithLabelValues("hit").Inc()
	c.logger.Debug("image cache hit", slog.String(logx.FieldCacheKey, key))

	return el.Value.(*entry).data, true //nolint:forcetypeassert
}

// Put stores data under key, replacing any previous entry. A value larger
// than the total cost limit is not stored and drops the previous entry.
func (c *ImageCache) Put(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)

	cost := len(data)

	if c.totalCostLimit > 0 && cost > c.totalCostLimit {
		c.logger.Warn("image exceeds cache cost limit",
			slog.String(logx.FieldCacheKey, key),
			slog.Int(logx.FieldSize, cost),
		)

		return
	}

	for c.recency.Len() > 0 && c.exceedsLocked(cost) {
		c.evictOldestLocked()
	}

	el := c.recency.PushFront(&entry{key: key, data: data})
	c.store.Set(key, el, gocache.NoExpiration)
	c.totalCost += cost

	c.logger.Debug("image cached",
		slog.String(logx.FieldCacheKey, key),
		slog.Int(logx.FieldSize, cost),
		slog.Int(logx.FieldCacheCount, c.recency.Len()),
		slog.Int(logx.FieldCacheCost, c.totalCost),
	)
}

func (c *ImageCache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(key)
}

func (c *ImageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Flush()
	c.recency.Init()
	c.totalCost = 0
}

func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.recency.Len()
}

func (c *ImageCache) TotalCost() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalCost
}

// exceedsLocked reports whether adding an entry of the given cost breaks a limit.
func (c *ImageCache) exceedsLocked(cost int) bool {
	if c.countLimit > 0 && c.recency.Len()+1 > c.countLimit {
		return true
	}

	return c.totalCostLimit > 0 && c.totalCost+cost > c.totalCostLimit
}

func (c *ImageCache) evictOldestLocked() {
	el := c.recency.Back()
	if el == nil {
		return
	}

	e := el.Value.(*entry) //nolint:forcetypeassert

	c.recency.Remove(el)
	c.store.Delete(e.key)
	c.totalCost -= len(e.data)

	cacheEvictions.Inc()
	c.logger.Debug("image evicted", slog.String(logx.FieldCacheKey, e.key), slog.Int(logx.FieldSize, len(e.data)))
}

func (c *ImageCache) removeLocked(key string) {
	v, ok := c.store.Get(key)
	if !ok {
		return
	}

	el := v.(*list.Element) //nolint:forcetypeassert
	e := el.Value.(*entry)  //nolint:forcetypeassert

	c.recency.Remove(el)
	c.store.Delete(key)
	c.totalCost -= len(e.data)
}
