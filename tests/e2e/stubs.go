//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// StubLocationID is the only location the Square stub reports.
const StubLocationID = "LOC-E2E"

// SquareStub answers the few Square endpoints the service calls.
type SquareStub struct {
	URL string

	mu     sync.Mutex
	links  []map[string]any
	orders map[string]map[string]any
	fail   bool
}

func newSquareStub(t *testing.T) *SquareStub {
	t.Helper()

	s := &SquareStub{orders: map[string]map[string]any{}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/locations", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"locations": []map[string]any{{"id": StubLocationID, "name": "E2E", "status": "ACTIVE"}},
		})
	})
	mux.HandleFunc("POST /v2/online-checkout/payment-links", s.createLink)
	mux.HandleFunc("GET /v2/orders/{id}", s.getOrder)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	s.URL = srv.URL
	return s
}

// FailNext makes every call answer 500 until Reset.
func (s *SquareStub) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = true
}

func (s *SquareStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = false
	s.links = nil
	s.orders = map[string]map[string]any{}
}

// PutOrder registers an order returned by GET /v2/orders/{id}.
func (s *SquareStub) PutOrder(id string, metadata map[string]string, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[id] = map[string]any{"id": id, "location_id": StubLocationID, "metadata": metadata, "note": note}
}

// Links returns the payment link requests received so far.
func (s *SquareStub) Links() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.links...)
}

func (s *SquareStub) createLink(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		writeSquareError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeSquareError(w, http.StatusBadRequest, "INVALID_REQUEST_ERROR")
		return
	}
	s.links = append(s.links, body)

	n := len(s.links)
	writeJSON(w, http.StatusOK, map[string]any{
		"payment_link": map[string]any{
			"id":       fmt.Sprintf("PL-%d", n),
			"url":      fmt.Sprintf("https://square.link/u/e2e-%d", n),
			"order_id": fmt.Sprintf("ORD-%d", n),
		},
	})
}

func (s *SquareStub) getOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		writeSquareError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
		return
	}
	order, ok := s.orders[r.PathValue("id")]
	if !ok {
		writeSquareError(w, http.StatusNotFound, "NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

// FeedStub serves one RSS document per Medium username.
type FeedStub struct {
	URL string

	mu    sync.Mutex
	feeds map[string]string
	hits  int
}

func newFeedStub(t *testing.T) *FeedStub {
	t.Helper()

	f := &FeedStub{feeds: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hits++
		doc, ok := f.feeds[strings.TrimPrefix(strings.Trim(r.URL.Path, "/"), "@")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	f.URL = srv.URL + "/"
	return f
}

// PutFeed publishes one post for username.
func (f *FeedStub) PutFeed(username, title, published, htmlBody string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feeds[username] = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel><title>%[1]s on Medium</title>
<item>
<title>%[2]s</title>
<link>https://medium.com/@%[1]s/post</link>
<dc:creator>%[1]s</dc:creator>
<pubDate>%[3]s</pubDate>
<category>bikepacking</category>
<content:encoded><![CDATA[%[4]s]]></content:encoded>
</item>
</channel></rss>`, username, title, published, htmlBody)
}

func (f *FeedStub) Hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits
}

func (f *FeedStub) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feeds = map[string]string{}
	f.hits = 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSquareError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"category": "API_ERROR", "code": code, "detail": "stubbed failure"}},
	})
}
