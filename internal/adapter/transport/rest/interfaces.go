package rest

import (
	"context"

	"sorarelay/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./server_mock.go -package=rest

// Dispatcher runs the authenticated task-creation pipeline.
type Dispatcher interface {
	Dispatch(ctx context.Context, req entity.DispatchRequest) (entity.DispatchResult, error)
}

// EndpointAdmin manages persisted relay endpoint rows.
type EndpointAdmin interface {
	ListEndpointConfigs(ctx context.Context) ([]entity.EndpointConfig, error)
	AddEndpoint(ctx context.Context, url, apiKey string, enabled bool) (int64, error)
	SetEndpointEnabled(ctx context.Context, id int64, enabled bool) error
}

// CacheInvalidator drops the pool's cached endpoint view.
type CacheInvalidator interface {
	InvalidateCache()
}
