package service

import (
	"context"

	"sorarelay/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./service_mock.go -package=service

// PowSolver searches for a payload meeting a difficulty threshold.
type PowSolver interface {
	Solve(seed, difficulty string, fp entity.Fingerprint) entity.PowSolution
}

// FingerprintSource fabricates client-environment snapshots.
type FingerprintSource interface {
	Generate(userAgent string) entity.Fingerprint
}

// TokenBuilder assembles the composite sentinel credential.
type TokenBuilder interface {
	BuildToken(flow, reqID, initialProof string, resp entity.SentinelChallengeResponse, userAgent string) (string, error)
}

// ChallengeClient performs the remote sentinel verification exchange.
type ChallengeClient interface {
	RequestChallenge(ctx context.Context, accessToken, userAgent, proof, flow, id string) (entity.SentinelChallengeResponse, error)
}

// TaskRelay posts an authenticated task-creation request to one endpoint.
type TaskRelay interface {
	CreateTask(ctx context.Context, ep entity.EndpointConfig, accessToken, sentinelToken string, payload map[string]any) (string, error)
}

// EndpointSource lists configured relay endpoints. Refresh is always a
// full re-fetch, never incremental.
type EndpointSource interface {
	ListEndpointConfigs(ctx context.Context) ([]entity.EndpointConfig, error)
}
