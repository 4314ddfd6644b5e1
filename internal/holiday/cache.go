package holiday

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Absolute bounds for feast computation. Years outside are "unknown".
const (
	MinYear = 1000
	MaxYear = 3000
)

// Default cacheable range. Configurable through WithCacheRange.
const (
	DefaultMinCachedYear = 1750
	DefaultMaxCachedYear = 2250
)

// CacheObserver receives feast cache events. Implementations must be safe
// for concurrent use.
type CacheObserver interface {
	Hit(year int)
	Miss(year int)
	Bypass(year int)
}

type nopObserver struct{}

func (nopObserver) Hit(int)    {}
func (nopObserver) Miss(int)   {}
func (nopObserver) Bypass(int) {}

// FeastCache memoizes ComputeFeast for years inside [min, max].
//
// The map is append-only and never holds more than max-min+1 entries.
// Concurrent misses for the same year are collapsed into a single
// computation; every reader observes the same stored value.
type FeastCache struct {
	min, max int

	mu      sync.RWMutex
	entries map[int]FeastDate

	fill     singleflight.Group
	observer CacheObserver
}

// NewFeastCache returns a cache for the inclusive year range [min, max].
func NewFeastCache(min, max int) (*FeastCache, error) {
	if min > max || min < MinYear || max > MaxYear {
		return nil, fmt.Errorf("%w: [%d, %d] not within [%d, %d]", ErrInvalidCacheRange, min, max, MinYear, MaxYear)
	}
	return &FeastCache{
		min:      min,
		max:      max,
		entries:  make(map[int]FeastDate, max-min+1),
		observer: nopObserver{},
	}, nil
}

// SetObserver installs o; nil restores the no-op observer.
func (c *FeastCache) SetObserver(o CacheObserver) {
	if o == nil {
		o = nopObserver{}
	}
	c.observer = o
}

// Range returns the cacheable bounds.
func (c *FeastCache) Range() (min, max int) { return c.min, c.max }

// Len returns the number of memoized years.
func (c *FeastCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the feast of year. ok is false when year lies outside
// [MinYear, MaxYear]; that is not an error, callers treat it as "no feast
// information available".
func (c *FeastCache) Get(year int) (f FeastDate, ok bool) {
	if year < MinYear || year > MaxYear {
		return FeastDate{}, false
	}
	if year < c.min || year > c.max {
		c.observer.Bypass(year)
		return ComputeFeast(year), true
	}

	c.mu.RLock()
	f, hit := c.entries[year]
	c.mu.RUnlock()
	if hit {
		c.observer.Hit(year)
		return f, true
	}

	v, _, _ := c.fill.Do(strconv.Itoa(year), func() (interface{}, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if stored, ok := c.entries[year]; ok {
			return stored, nil
		}
		c.observer.Miss(year)
		computed := ComputeFeast(year)
		c.entries[year] = computed
		return computed, nil
	})
	return v.(FeastDate), true
}

// Warm fills the whole cacheable range using up to GOMAXPROCS workers.
func (c *FeastCache) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for y := c.min; y <= c.max; y++ {
		year := y
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.Get(year)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
