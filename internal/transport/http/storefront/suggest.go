package storefront

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/app/storefront/dto"
	"github.com/maxiipins/storefront-service/internal/app/storefront/queries/search_catalog"
	"github.com/maxiipins/storefront-service/internal/pkg/clock"
	"github.com/maxiipins/storefront-service/internal/pkg/debounce"
)

// suggestTimeout bounds the background search run after the debounce window.
const suggestTimeout = 10 * time.Second

// suggestSessionTTL is how long a typeahead session may stay idle before its
// debouncer and cached result are dropped. Anonymous visitors mint fresh
// session keys, so idle entries must not outlive their shopper.
const suggestSessionTTL = 15 * time.Minute

// Suggester drives the typeahead path: each keystroke resets a per-session
// debounce timer, and only a query that survives an uninterrupted quiet
// window actually hits the catalog. Submit returns the latest completed
// result immediately, so a fast typist sees results lag by one window
// instead of firing a search per keystroke.
type Suggester struct {
	search   *search_catalog.Handler
	fallback func(ctx context.Context) []domain.CatalogItem
	window   time.Duration
	clk      clock.Clock

	mu       sync.Mutex
	sessions map[string]*suggestSession
}

type suggestSession struct {
	deb      *debounce.Debouncer
	lastSeen time.Time // guarded by Suggester.mu

	mu     sync.Mutex
	result *dto.SearchResultDTO
}

func NewSuggester(search *search_catalog.Handler, fallback func(ctx context.Context) []domain.CatalogItem, window time.Duration, clk clock.Clock) *Suggester {
	return &Suggester{
		search:   search,
		fallback: fallback,
		window:   window,
		clk:      clk,
		sessions: make(map[string]*suggestSession),
	}
}

// Submit records a keystroke's query and returns the most recent completed
// result for the session. The search itself runs after the debounce window,
// detached from the request context. A non-blank query whose search has not
// completed yet reports Pending rather than the blank-query state.
func (s *Suggester) Submit(sessionKey, query string) *dto.SearchResultDTO {
	if strings.TrimSpace(query) == "" {
		return &dto.SearchResultDTO{Query: query, NoQuery: true, Items: []dto.CatalogItemDTO{}}
	}

	sess := s.session(sessionKey)

	sess.deb.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), suggestTimeout)
		defer cancel()
		result := s.search.Execute(ctx, query, s.fallback(ctx))

		sess.mu.Lock()
		sess.result = result
		sess.mu.Unlock()
	})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.result == nil {
		return &dto.SearchResultDTO{Query: query, Pending: true, Items: []dto.CatalogItemDTO{}}
	}
	return sess.result
}

func (s *Suggester) session(sessionKey string) *suggestSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	s.evictIdle(now)

	sess, ok := s.sessions[sessionKey]
	if !ok {
		sess = &suggestSession{deb: debounce.New(s.window)}
		s.sessions[sessionKey] = sess
	}
	sess.lastSeen = now
	return sess
}

// evictIdle drops sessions idle past the TTL and stops their timers.
// Caller holds s.mu.
func (s *Suggester) evictIdle(now time.Time) {
	for key, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > suggestSessionTTL {
			sess.deb.Stop()
			delete(s.sessions, key)
		}
	}
}

// Stop cancels every pending debounce timer. Called on shutdown.
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		sess.deb.Stop()
	}
}
