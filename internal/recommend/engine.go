package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cardmatch-ai/cardmatch/internal/catalog"
	"github.com/cardmatch-ai/cardmatch/internal/observability"
	"github.com/cardmatch-ai/cardmatch/internal/textindex"
)

// Engine is the matching and ranking engine. It is constructed once at
// startup, holds only frozen state (catalog snapshot plus both fitted
// spaces), and is safe for concurrent queries.
type Engine struct {
	logger      *observability.Logger
	store       *catalog.Store
	descSpace   *textindex.Space
	reviewSpace *textindex.Space
	cache       *ResponseCache
}

// Options configures engine construction.
type Options struct {
	// Components overrides the latent dimensionality (default 130).
	Components int
	// ExtraStopWords extend the default stop word set.
	ExtraStopWords []string
	// Cache is an optional response cache; nil disables caching.
	Cache *ResponseCache
}

// NewEngine fits both text spaces over the catalog and returns a ready
// engine. This is the expensive one-time step; queries never refit.
func NewEngine(logger *observability.Logger, store *catalog.Store, opts Options) (*Engine, error) {
	components := opts.Components
	if components <= 0 {
		components = LatentDimensions
	}

	stopWords := textindex.DefaultStopWords()
	for _, w := range opts.ExtraStopWords {
		stopWords[strings.ToLower(w)] = struct{}{}
	}

	started := time.Now()

	descSpace, err := textindex.BuildSpace(store.DescriptionCorpus(), textindex.SpaceConfig{
		Components: components,
		StopWords:  stopWords,
	})
	if err != nil {
		return nil, fmt.Errorf("build description space: %w", err)
	}

	reviewSpace, err := textindex.BuildSpace(store.ReviewCorpus(), textindex.SpaceConfig{
		Components: components,
		StopWords:  stopWords,
	})
	if err != nil {
		return nil, fmt.Errorf("build review space: %w", err)
	}

	logger.Info().
		Int("cards", store.Len()).
		Int("description_dims", descSpace.Dims()).
		Int("review_dims", reviewSpace.Dims()).
		Dur("elapsed", time.Since(started)).
		Msg("Engine indexes built")

	return &Engine{
		logger:      logger,
		store:       store,
		descSpace:   descSpace,
		reviewSpace: reviewSpace,
		cache:       opts.Cache,
	}, nil
}

// Store returns the engine's catalog snapshot.
func (e *Engine) Store() *catalog.Store {
	return e.store
}

// Recommend ranks the catalog against the query, applies the user's
// preferences, and returns one page of results. Identical requests against
// the same engine return identical responses.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrNoQuery
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}

	if e.cache != nil {
		if resp, ok := e.cache.Get(ctx, req); ok {
			return resp, nil
		}
	}

	started := time.Now()

	matches := e.scoreCatalog(req.Query)
	matches = e.adjust(matches, req.Filters)
	resp := e.assemble(matches, req.Offset, req.Limit)

	e.logger.Debug().
		Str("query", req.Query).
		Int("total", resp.Pagination.Total).
		Int("returned", len(resp.Recommendations)).
		Dur("elapsed", time.Since(started)).
		Msg("Recommendation computed")

	if e.cache != nil {
		e.cache.Put(ctx, req, resp)
	}
	return resp, nil
}
