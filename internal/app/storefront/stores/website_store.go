package stores

import (
	"context"
	"sync"

	"github.com/maxiipins/storefront-service/internal/app/storefront/contracts"
	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
	"github.com/maxiipins/storefront-service/internal/pkg/logging"
)

// WebsiteStore caches the site-wide content snapshot (bank accounts, hero
// entries, contact channels). Refresh applies a supersede rule: each call
// takes a generation number and a completed fetch only lands if no newer
// refresh started in the meantime, so stale responses never overwrite
// fresher ones.
type WebsiteStore struct {
	gateway contracts.CommerceGateway
	logger  logging.Logger

	mu   sync.Mutex
	info *domain.WebsiteInfo
	gen  uint64
}

// NewWebsiteStore builds a store over the gateway.
func NewWebsiteStore(gateway contracts.CommerceGateway, logger logging.Logger) *WebsiteStore {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &WebsiteStore{gateway: gateway, logger: logger}
}

// Info returns the cached snapshot and whether one has been loaded.
func (s *WebsiteStore) Info() (*domain.WebsiteInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.info == nil {
		return nil, false
	}
	copied := *s.info
	return &copied, true
}

// Refresh fetches the snapshot from the upstream. A refresh that finishes
// after a newer one started discards its result and reports no error; a
// fetch failure keeps whatever snapshot was cached before.
func (s *WebsiteStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	info, err := s.gateway.WebsiteInfo(ctx)
	if err != nil {
		s.logger.Warn("website info refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer refresh superseded this one.
		s.logger.Debug("website info refresh superseded", map[string]interface{}{
			"generation": gen,
			"current":    s.gen,
		})
		return nil
	}
	s.info = info
	return nil
}
