package taxonomy

import (
	"context"
	"time"

	"github.com/nkrishelie/arxiv-graph-viz/internal/logger"
)

// DefaultFetchTimeout bounds the live fetch when the resolver has no explicit timeout.
const DefaultFetchTimeout = 10 * time.Second

// Source names reported in Outcome.
const (
	SourceLive    = "live"
	SourceCache   = "cache"
	SourceDefault = "default"
	SourceNone    = "none"
)

// Fetcher retrieves the taxonomy from the live source.
type Fetcher interface {
	Fetch(ctx context.Context) (*Taxonomy, error)
}

// Cache persists the last good live taxonomy between runs.
type Cache interface {
	Load() (*Taxonomy, error)
	Save(t *Taxonomy) error
}

// Outcome is the result of one resolution run.
type Outcome struct {
	Taxonomy *Taxonomy
	Source   string // live, cache, default or none
	// RefreshCache is set when the live result won and should replace the cache.
	RefreshCache bool
	// CacheRefreshed reports whether the cache file was actually rewritten.
	CacheRefreshed bool
}

// candidates holds what each source produced. Every field is non-nil.
type candidates struct {
	live     *Taxonomy
	cached   *Taxonomy
	fallback *Taxonomy
}

// strategy decides the outcome if it applies to the candidates.
type strategy struct {
	name   string
	decide func(c candidates) (Outcome, bool)
}

// strategies are evaluated in order; the first that applies wins.
var strategies = []strategy{
	{name: "guard-cache", decide: guardCache},
	{name: "prefer-live", decide: preferLive},
	{name: "use-default", decide: useDefault},
}

// guardCache keeps the cache when the live result is smaller than it, so a
// broken or partial scrape never shrinks the dataset.
func guardCache(c candidates) (Outcome, bool) {
	if c.live.Len() < c.cached.Len() {
		return Outcome{Taxonomy: c.cached, Source: SourceCache}, true
	}
	return Outcome{}, false
}

// preferLive uses any non-empty live result and asks for the cache to be replaced.
func preferLive(c candidates) (Outcome, bool) {
	if c.live.Len() > 0 {
		return Outcome{Taxonomy: c.live, Source: SourceLive, RefreshCache: true}, true
	}
	return Outcome{}, false
}

// useDefault applies when both live and cache came back empty.
func useDefault(c candidates) (Outcome, bool) {
	if c.fallback.Len() > 0 {
		return Outcome{Taxonomy: c.fallback, Source: SourceDefault}, true
	}
	return Outcome{}, false
}

// decide runs the strategies over the candidates.
func decide(c candidates) Outcome {
	for _, s := range strategies {
		if out, ok := s.decide(c); ok {
			return out
		}
	}
	return Outcome{Taxonomy: New(), Source: SourceNone}
}

// Resolver produces the taxonomy for a run from a live source, an on-disk
// cache and a hardcoded default, in that order of priority.
type Resolver struct {
	Fetcher Fetcher
	Cache   Cache
	Default *Taxonomy
	Timeout time.Duration
	Logger  *logger.Logger
}

// Resolve consults each source exactly once and never fails. Source errors are
// logged as warnings and treated as empty results. The returned taxonomy is
// empty only when every source, the default included, is empty.
func (r *Resolver) Resolve(ctx context.Context) Outcome {
	log := r.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := candidates{
		live:     r.fetchLive(ctx, log),
		cached:   r.loadCache(log),
		fallback: r.Default,
	}
	if c.fallback == nil {
		c.fallback = New()
	}

	out := decide(c)

	switch out.Source {
	case SourceCache:
		log.Warn("live taxonomy smaller than cache, keeping cache",
			"live_count", c.live.Len(), "cache_count", c.cached.Len())
	case SourceLive:
		log.Info("using live taxonomy", "live_count", c.live.Len(), "cache_count", c.cached.Len())
	case SourceDefault:
		log.Warn("live fetch and cache both empty, using built-in taxonomy", "count", c.fallback.Len())
	case SourceNone:
		log.Error("no taxonomy source produced any entries")
	}

	if out.RefreshCache && r.Cache != nil {
		if err := r.Cache.Save(out.Taxonomy); err != nil {
			log.Warn("failed to refresh taxonomy cache", "err", err)
		} else {
			out.CacheRefreshed = true
		}
	}

	return out
}

func (r *Resolver) fetchLive(ctx context.Context, log *logger.Logger) *Taxonomy {
	if r.Fetcher == nil {
		return New()
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	t, err := r.Fetcher.Fetch(ctx)
	if err != nil {
		log.Warn("live taxonomy fetch failed", "source", SourceLive, "err", err)
		return New()
	}
	if t == nil {
		return New()
	}
	return t
}

func (r *Resolver) loadCache(log *logger.Logger) *Taxonomy {
	if r.Cache == nil {
		return New()
	}

	t, err := r.Cache.Load()
	if err != nil {
		log.Warn("taxonomy cache unreadable, ignoring it", "source", SourceCache, "err", err)
		return New()
	}
	if t == nil {
		return New()
	}
	if t.Len() > 0 {
		log.Debug("found cached taxonomy", "count", t.Len())
	}
	return t
}
