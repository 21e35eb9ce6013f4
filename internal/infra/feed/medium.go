package feed

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/usecase/queries"
)

const (
	ExcerptLength = 200

	maxConcurrentFeeds = 4
)

var imgSrcPattern = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// MediumFetcher reads the public RSS feed of each Medium user.
type MediumFetcher struct {
	baseURL string
	parser  *gofeed.Parser
	strip   *bluemonday.Policy
}

func NewMediumFetcher(cfg config.BlogConfig) *MediumFetcher {
	p := gofeed.NewParser()
	p.UserAgent = "bikepacking-api/1.0"
	p.Client = &http.Client{Timeout: cfg.FetchTimeout}

	base := cfg.FeedBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &MediumFetcher{
		baseURL: base,
		parser:  p,
		strip:   bluemonday.StrictPolicy(),
	}
}

// Fetch merges the posts of all usernames, newest first. A feed that cannot
// be fetched or parsed is logged and skipped.
func (f *MediumFetcher) Fetch(ctx context.Context, usernames []string, includeContent bool) ([]queries.BlogPostView, error) {
	results := make([][]queries.BlogPostView, len(usernames))

	sem := make(chan struct{}, maxConcurrentFeeds)
	var wg sync.WaitGroup
	for i, username := range usernames {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, username string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = f.fetchOne(ctx, username, includeContent)
		}(i, username)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	posts := make([]queries.BlogPostView, 0)
	for _, r := range results {
		posts = append(posts, r...)
	}
	SortNewestFirst(posts)

	slog.Info("blog posts fetched", "posts", len(posts), "accounts", len(usernames))
	return posts, nil
}

func (f *MediumFetcher) fetchOne(ctx context.Context, username string, includeContent bool) []queries.BlogPostView {
	feedURL := f.baseURL + url.PathEscape(username)

	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		slog.Warn("failed to fetch medium feed", "username", username, "url", feedURL, "error", err)
		return nil
	}
	if len(parsed.Items) == 0 {
		slog.Warn("medium feed has no entries", "username", username)
		return nil
	}

	posts := make([]queries.BlogPostView, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil || item.Title == "" || item.Link == "" {
			continue
		}
		posts = append(posts, f.toView(username, item, includeContent))
	}
	return posts
}

func (f *MediumFetcher) toView(username string, item *gofeed.Item, includeContent bool) queries.BlogPostView {
	body := item.Content
	summary := item.Description
	if summary == "" {
		summary = body
	}

	v := queries.BlogPostView{
		Title:      item.Title,
		Link:       item.Link,
		Author:     "Unknown",
		Username:   username,
		Excerpt:    Excerpt(f.strip, summary, ExcerptLength),
		Categories: append([]string{}, item.Categories...),
	}
	if item.Author != nil && item.Author.Name != "" {
		v.Author = item.Author.Name
	} else if len(item.Authors) > 0 && item.Authors[0] != nil && item.Authors[0].Name != "" {
		v.Author = item.Authors[0].Name
	}
	if item.PublishedParsed != nil {
		t := item.PublishedParsed.UTC()
		v.PublishedAt = &t
	}
	if includeContent {
		v.Content = body
	}

	if item.Image != nil && item.Image.URL != "" {
		v.ThumbnailURL = item.Image.URL
	} else if src := Thumbnail(body); src != "" {
		v.ThumbnailURL = src
	} else {
		v.ThumbnailURL = Thumbnail(item.Description)
	}
	return v
}

// Thumbnail returns the src of the first <img> in the fragment.
func Thumbnail(fragment string) string {
	m := imgSrcPattern.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}

// Excerpt strips markup, collapses whitespace and cuts at the last word
// boundary within max runes, appending "...".
func Excerpt(policy *bluemonday.Policy, fragment string, max int) string {
	if fragment == "" {
		return ""
	}
	text := html.UnescapeString(policy.Sanitize(fragment))
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}

	cut := string([]rune(text)[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// SortNewestFirst orders posts by publication time; undated posts go last.
func SortNewestFirst(posts []queries.BlogPostView) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].PublishedAt, posts[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
