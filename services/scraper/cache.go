package scraper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrNoData = errors.New("no data available from the source site")

// resultCache is a single-slot ttl cache. It only ever holds the news
// result; the other listings are cheap enough to scrape per request.
type resultCache struct {
	mu        sync.Mutex
	value     []CategorySection
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{ttl: ttl, now: time.Now}
}

func (c *resultCache) get() ([]CategorySection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.value, true
}

func (c *resultCache) set(value []CategorySection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.fetchedAt = c.now()
}

// CachedNews serves the news listing out of the cache, rescraping at
// most once per ttl window. Concurrent expired readers share one
// rescrape. An empty rescrape returns ErrNoData and leaves the
// previous entry alone.
func (s *Service) CachedNews(ctx context.Context) ([]CategorySection, error) {
	if value, ok := s.newsCache.get(); ok {
		return value, nil
	}

	value, err, _ := s.newsGroup.Do("news", func() (any, error) {
		if value, ok := s.newsCache.get(); ok {
			return value, nil
		}

		slog.InfoContext(ctx, "news cache expired, rescraping")
		data := s.News(ctx)
		if len(data) == 0 {
			return nil, ErrNoData
		}
		s.newsCache.set(data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]CategorySection), nil
}
