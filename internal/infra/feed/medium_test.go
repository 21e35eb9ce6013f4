//go:build unit

package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase/queries"
)

func rssFeed(author string, items ...string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel><title>%s on Medium</title><link>https://medium.com/@%s</link>%s</channel></rss>`, author, author, strings.Join(items, ""))
}

func rssItem(title, link, pubDate, author, content string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate><dc:creator>%s</dc:creator><category>bikepacking</category><content:encoded><![CDATA[%s]]></content:encoded></item>`,
		title, link, pubDate, author, content)
}

func newFetcher(t *testing.T, feeds map[string]string) *MediumFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/feed/")
		body, ok := feeds[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewMediumFetcher(config.BlogConfig{
		FeedBaseURL:  srv.URL + "/feed",
		FetchTimeout: 2 * time.Second,
	})
}

func TestMediumFetcher_Fetch(t *testing.T) {
	f := newFetcher(t, map[string]string{
		"alice": rssFeed("alice",
			rssItem("Old ride", "https://medium.com/a/1", "Mon, 01 Jan 2024 10:00:00 GMT", "Alice",
				`<p>First <b>trip</b></p><img src="https://cdn.example.com/a1.jpg"/>`),
		),
		"bob": rssFeed("bob",
			rssItem("New ride", "https://medium.com/b/1", "Wed, 01 May 2024 10:00:00 GMT", "Bob", `<p>Hello</p>`),
			rssItem("", "https://medium.com/b/untitled", "Wed, 01 May 2024 10:00:00 GMT", "Bob", `<p>skipped</p>`),
		),
	})

	posts, err := f.Fetch(context.Background(), []string{"alice", "missing", "bob"}, false)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "New ride", posts[0].Title)
	assert.Equal(t, "bob", posts[0].Username)
	assert.Equal(t, "Old ride", posts[1].Title)
	assert.Equal(t, "Alice", posts[1].Author)
	assert.Equal(t, "First trip", posts[1].Excerpt)
	assert.Equal(t, "https://cdn.example.com/a1.jpg", posts[1].ThumbnailURL)
	assert.Equal(t, []string{"bikepacking"}, posts[1].Categories)
	assert.Empty(t, posts[1].Content)
}

func TestMediumFetcher_IncludeContent(t *testing.T) {
	f := newFetcher(t, map[string]string{
		"alice": rssFeed("alice", rssItem("Ride", "https://medium.com/a/1", "Mon, 01 Jan 2024 10:00:00 GMT", "Alice", `<p>Body</p>`)),
	})

	posts, err := f.Fetch(context.Background(), []string{"alice"}, true)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "<p>Body</p>", posts[0].Content)
}

func TestMediumFetcher_AllFeedsFail(t *testing.T) {
	f := newFetcher(t, map[string]string{})

	posts, err := f.Fetch(context.Background(), []string{"nobody"}, false)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestMediumFetcher_BoundsConcurrentFeeds(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed("x", rssItem("Ride", "https://medium.com"+r.URL.Path, "Mon, 01 Jan 2024 10:00:00 GMT", "X", "<p>x</p>"))))
	}))
	t.Cleanup(srv.Close)

	f := NewMediumFetcher(config.BlogConfig{FeedBaseURL: srv.URL + "/feed", FetchTimeout: 2 * time.Second})
	names := make([]string, 3*maxConcurrentFeeds)
	for i := range names {
		names[i] = fmt.Sprintf("rider%d", i)
	}

	posts, err := f.Fetch(context.Background(), names, false)
	require.NoError(t, err)
	assert.Len(t, posts, len(names))
	assert.LessOrEqual(t, peak.Load(), int32(maxConcurrentFeeds))
}

func TestExcerpt(t *testing.T) {
	p := bluemonday.StrictPolicy()

	assert.Equal(t, "", Excerpt(p, "", 200))
	assert.Equal(t, "Fish & chips at the bothy", Excerpt(p, "<p>Fish &amp; chips</p>\n\n<p>at   the bothy</p>", 200))
	assert.Equal(t, "one two...", Excerpt(p, "one two three", 9))
	assert.Equal(t, "abcdefgh...", Excerpt(p, "abcdefghijkl", 8))

	long := strings.Repeat("word ", 100)
	got := Excerpt(p, long, ExcerptLength)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), ExcerptLength+3)
}

func TestThumbnail(t *testing.T) {
	assert.Equal(t, "", Thumbnail("<p>no image</p>"))
	assert.Equal(t, "https://x/1.png", Thumbnail(`<figure><img alt="a" src='https://x/1.png'></figure><img src="https://x/2.png">`))
	assert.Equal(t, "https://x/a.png?w=1&h=2", Thumbnail(`<img src="https://x/a.png?w=1&amp;h=2">`))
}

func TestSortNewestFirst(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	posts := []queries.BlogPostView{{Title: "undated"}, {Title: "old", PublishedAt: &t1}, {Title: "new", PublishedAt: &t2}}

	SortNewestFirst(posts)

	assert.Equal(t, "new", posts[0].Title)
	assert.Equal(t, "old", posts[1].Title)
	assert.Equal(t, "undated", posts[2].Title)
}
