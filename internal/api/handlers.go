package api

import (
	"github.com/pipecraft/platform-shell/internal/cache"
	"github.com/pipecraft/platform-shell/internal/config"
	"github.com/pipecraft/platform-shell/internal/funnel"
	"github.com/pipecraft/platform-shell/internal/salesengine"
)

// Handlers holds the subsystems the HTTP endpoints depend on. Any field may
// be nil; each handler degrades to its documented fallback (zero stats, mock
// payloads) instead of failing when a dependency is absent.
type Handlers struct {
	cfg    *config.Config
	stats  *funnel.Service
	engine *salesengine.Client
	cache  *cache.Cache
}

// NewHandlers creates a Handlers with no subsystems wired. Use the Set*
// methods to attach them as they come up.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{cfg: cfg}
}

// SetFunnelService attaches the contact funnel aggregation service.
func (h *Handlers) SetFunnelService(svc *funnel.Service) {
	h.stats = svc
}

// SetEngineClient attaches the sales engine client used by the proxy routes.
func (h *Handlers) SetEngineClient(client *salesengine.Client) {
	h.engine = client
}

// SetCache attaches the response cache for proxied engine payloads.
func (h *Handlers) SetCache(c *cache.Cache) {
	h.cache = c
}

func (h *Handlers) engineConfigured() bool {
	return h.engine.Configured()
}
