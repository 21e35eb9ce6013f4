package queries

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bikepacking-api/internal/pkg/errs"
)

const blogCacheName = "blog"

// MaxUsernames bounds the feeds fetched for one request.
const MaxUsernames = 10

var (
	ErrNoUsernames      = errs.New("no medium usernames provided")
	ErrTooManyUsernames = errs.New("too many medium usernames")
)

type BlogFetcher interface {
	Fetch(ctx context.Context, usernames []string, includeContent bool) ([]BlogPostView, error)
}

// Cache stores opaque values with a TTL. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type CacheMetrics interface {
	RecordCacheLookup(cache string, hit bool)
}

type BlogQueries interface {
	// ListPosts falls back to the configured usernames when none are given.
	ListPosts(ctx context.Context, usernames []string, includeContent bool) ([]BlogPostView, error)
}

type blogQueriesImpl struct {
	fetcher  BlogFetcher
	cache    Cache
	ttl      time.Duration
	defaults []string
	metrics  CacheMetrics
}

func NewBlogQueries(fetcher BlogFetcher, cache Cache, ttl time.Duration, defaults []string, metrics CacheMetrics) BlogQueries {
	return &blogQueriesImpl{
		fetcher:  fetcher,
		cache:    cache,
		ttl:      ttl,
		defaults: defaults,
		metrics:  metrics,
	}
}

func (q *blogQueriesImpl) ListPosts(ctx context.Context, usernames []string, includeContent bool) ([]BlogPostView, error) {
	names := CleanUsernames(usernames)
	if len(names) > MaxUsernames {
		return nil, ErrTooManyUsernames
	}
	if len(names) == 0 {
		names = CleanUsernames(q.defaults)
	}
	if len(names) == 0 {
		return nil, ErrNoUsernames
	}

	key := BlogCacheKey(names, includeContent)
	if posts, ok := q.fromCache(ctx, key); ok {
		return posts, nil
	}

	posts, err := q.fetcher.Fetch(ctx, names, includeContent)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(posts); err == nil {
		if err := q.cache.Set(ctx, key, b, q.ttl); err != nil {
			slog.Warn("failed to store blog posts in cache", "error", err.Error())
		}
	}
	return posts, nil
}

func (q *blogQueriesImpl) fromCache(ctx context.Context, key string) ([]BlogPostView, bool) {
	b, ok, err := q.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("blog cache lookup failed", "error", err.Error())
		ok = false
	}

	var posts []BlogPostView
	if ok {
		if err := json.Unmarshal(b, &posts); err != nil {
			slog.Warn("discarding undecodable cached blog posts", "error", err.Error())
			ok = false
		}
	}
	if q.metrics != nil {
		q.metrics.RecordCacheLookup(blogCacheName, ok)
	}
	return posts, ok
}

// CleanUsernames trims entries, strips a leading "@" and drops blanks.
func CleanUsernames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			if u := strings.TrimPrefix(strings.TrimSpace(part), "@"); u != "" {
				out = append(out, u)
			}
		}
	}
	return out
}

// BlogCacheKey fingerprints the request so that equal requests share an entry.
func BlogCacheKey(usernames []string, includeContent bool) string {
	h := sha256.New()
	for _, u := range usernames {
		h.Write([]byte(u))
		h.Write([]byte{0})
	}
	h.Write([]byte(strconv.FormatBool(includeContent)))
	return blogCacheName + ":" + hex.EncodeToString(h.Sum(nil))
}
