package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cardmatch-ai/cardmatch/internal/cache"
	"github.com/cardmatch-ai/cardmatch/internal/observability"
)

// ResponseCache caches full recommendation responses. Safe because results
// are deterministic for a frozen catalog: identical requests always
// produce identical responses.
type ResponseCache struct {
	client cache.Client
	logger *observability.Logger
	ttl    time.Duration
	prefix string
}

// NewResponseCache creates a response cache over the given cache client.
func NewResponseCache(client cache.Client, logger *observability.Logger, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResponseCache{
		client: client,
		logger: logger,
		ttl:    ttl,
		prefix: "recommend:",
	}
}

// key derives a deterministic cache key from every request field that
// affects the response.
func (c *ResponseCache) key(req Request) string {
	parts := []string{
		req.Query,
		strings.ToLower(req.Filters.CreditScore),
		strings.ToLower(req.Filters.AnnualFee),
		strings.ToLower(req.Filters.PreferredAirline),
		strings.ToLower(req.Filters.TravelFrequency),
		strconv.Itoa(req.Offset),
		strconv.Itoa(req.Limit),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return c.prefix + hex.EncodeToString(sum[:16])
}

// Get returns a cached response, or ok=false on miss or decode failure.
func (c *ResponseCache) Get(ctx context.Context, req Request) (*Response, bool) {
	data, err := c.client.Get(ctx, c.key(req))
	if err != nil {
		return nil, false
	}
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Warn().Err(err).Msg("Dropping undecodable cached response")
		return nil, false
	}
	return &resp, true
}

// Put stores a response. Cache failures are logged and absorbed; the
// caller already has the response.
func (c *ResponseCache) Put(ctx context.Context, req Request, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to encode response for cache")
		return
	}
	if err := c.client.Set(ctx, c.key(req), data, c.ttl); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to cache response")
	}
}
