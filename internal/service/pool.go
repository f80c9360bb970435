package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"sorarelay/internal/entity"
)

const defaultPoolTTL = 60 * time.Second

var (
	// ErrRelayDisabled reports that no configured endpoint row is enabled.
	ErrRelayDisabled = errors.New("relay endpoints disabled")
	// ErrNoUsableEndpoint reports an enabled pool with no row carrying
	// both a URL and a key.
	ErrNoUsableEndpoint = errors.New("no usable relay endpoint")
)

// EndpointPool serves relay endpoints round-robin over a TTL-cached view
// of the configuration source and sweeps the whole pool before giving up.
// One instance is shared by all in-flight dispatches.
type EndpointPool struct {
	log *slog.Logger
	src EndpointSource
	ttl time.Duration

	cacheMu sync.Mutex
	cache   []entity.EndpointConfig
	fetched time.Time

	// Selection and cursor advance form one critical section; the cache
	// refresh above is idempotent and only needs its own lock.
	selMu  sync.Mutex
	cursor int
}

func NewEndpointPool(log *slog.Logger, src EndpointSource, ttl time.Duration) *EndpointPool {
	if ttl <= 0 {
		ttl = defaultPoolTTL
	}
	return &EndpointPool{log: log, src: src, ttl: ttl}
}

func (p *EndpointPool) configs(ctx context.Context) ([]entity.EndpointConfig, error) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	if p.cache != nil && time.Since(p.fetched) <= p.ttl {
		return p.cache, nil
	}
	rows, err := p.src.ListEndpointConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list endpoint configs: %w", err)
	}
	p.cache = rows
	p.fetched = time.Now()
	return rows, nil
}

// InvalidateCache forces the next access to re-fetch configuration; call
// it after external configuration changes.
func (p *EndpointPool) InvalidateCache() {
	p.cacheMu.Lock()
	p.cache = nil
	p.fetched = time.Time{}
	p.cacheMu.Unlock()
}

func usable(rows []entity.EndpointConfig) []entity.EndpointConfig {
	out := make([]entity.EndpointConfig, 0, len(rows))
	for _, r := range rows {
		if !r.Enabled || strings.TrimSpace(r.URL) == "" || r.APIKey == "" {
			continue
		}
		r.URL = strings.TrimSpace(r.URL)
		out = append(out, r)
	}
	return out
}

// NextEndpoint returns the pool's next endpoint in rotation order. The
// second return value is false when no usable endpoint exists.
func (p *EndpointPool) NextEndpoint(ctx context.Context) (entity.EndpointConfig, bool, error) {
	rows, err := p.configs(ctx)
	if err != nil {
		return entity.EndpointConfig{}, false, err
	}
	pool := usable(rows)
	if len(pool) == 0 {
		return entity.EndpointConfig{}, false, nil
	}
	p.selMu.Lock()
	ep := pool[p.cursor%len(pool)]
	p.cursor = (p.cursor + 1) % len(pool)
	p.selMu.Unlock()
	return ep, true, nil
}

// IsEnabled reports whether any configured row is enabled, regardless of
// URL/key completeness.
func (p *EndpointPool) IsEnabled(ctx context.Context) (bool, error) {
	rows, err := p.configs(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range rows {
		if r.Enabled {
			return true, nil
		}
	}
	return false, nil
}

// DispatchWithFailover runs op against up to pool-size distinct endpoints,
// advancing the rotation once per attempt, and returns the first success
// or an aggregate error carrying the last failure. Per-attempt failures
// are logged, never surfaced individually.
func (p *EndpointPool) DispatchWithFailover(ctx context.Context, op func(ctx context.Context, ep entity.EndpointConfig) (string, error)) (string, error) {
	enabled, err := p.IsEnabled(ctx)
	if err != nil {
		return "", err
	}
	if !enabled {
		return "", ErrRelayDisabled
	}
	rows, err := p.configs(ctx)
	if err != nil {
		return "", err
	}
	pool := usable(rows)
	if len(pool) == 0 {
		return "", ErrNoUsableEndpoint
	}

	var lastErr error
	for attempt := 1; attempt <= len(pool); attempt++ {
		ep, ok, err := p.NextEndpoint(ctx)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		out, err := op(ctx, ep)
		if err == nil {
			p.log.Info("relay dispatch succeeded", "url", ep.URL, "attempt", attempt)
			return out, nil
		}
		lastErr = err
		p.log.Warn("relay attempt failed", "url", ep.URL, "attempt", attempt, "err", err)
	}
	return "", fmt.Errorf("all %d relay endpoints failed: last error: %w", len(pool), lastErr)
}
