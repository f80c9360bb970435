package service

import (
	"context"
	"errors"
	"log/slog"
	mrand "math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"sorarelay/internal/entity"
)

const defaultUserAgent = "Sora/1.2026.007 (Android 15; 24122RKC7C; build 2600700)"

// ErrInvalidRequest reports a dispatch request missing required fields.
var ErrInvalidRequest = errors.New("access_token and payload are required")

// Dispatcher runs the full pipeline for one task-creation request:
// fingerprint, proof-of-work, sentinel exchange, token assembly, then the
// failover relay call.
type Dispatcher struct {
	log       *slog.Logger
	solver    PowSolver
	prints    FingerprintSource
	tokens    TokenBuilder
	challenge ChallengeClient
	relay     TaskRelay
	pool      *EndpointPool
	seedFn    func() string
}

func NewDispatcher(log *slog.Logger, solver PowSolver, prints FingerprintSource, tokens TokenBuilder, challenge ChallengeClient, relay TaskRelay, pool *EndpointPool) *Dispatcher {
	return &Dispatcher{
		log:       log,
		solver:    solver,
		prints:    prints,
		tokens:    tokens,
		challenge: challenge,
		relay:     relay,
		pool:      pool,
		seedFn:    randomSeed,
	}
}

func randomSeed() string {
	return strconv.FormatFloat(mrand.Float64(), 'f', -1, 64)
}

// Dispatch validates the request, earns a sentinel token and issues the
// task-creation call through the endpoint pool. Upstream verification
// failures come back as *entity.UpstreamError and must be relayed
// verbatim by the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, req entity.DispatchRequest) (entity.DispatchResult, error) {
	if req.AccessToken == "" || len(req.Payload) == 0 {
		return entity.DispatchResult{}, ErrInvalidRequest
	}
	ua := req.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	flow := req.Flow
	if flow == "" {
		flow = DefaultFlow
	}
	reqID := uuid.NewString()

	sol := d.solver.Solve(d.seedFn(), initialDifficulty, d.prints.Generate(ua))
	if !sol.Satisfied {
		// Still transmitted; the remote side treats the marker as a
		// failed proof, not a malformed request.
		d.log.Warn("initial proof-of-work exhausted", "id", reqID)
	}
	initialProof := initialProofPrefix + sol.Payload

	resp, err := d.challenge.RequestChallenge(ctx, req.AccessToken, ua, initialProof, flow, reqID)
	if err != nil {
		return entity.DispatchResult{}, err
	}

	token, err := d.tokens.BuildToken(flow, reqID, initialProof, resp, ua)
	if err != nil {
		return entity.DispatchResult{}, err
	}

	taskID, err := d.pool.DispatchWithFailover(ctx, func(ctx context.Context, ep entity.EndpointConfig) (string, error) {
		return d.relay.CreateTask(ctx, ep, req.AccessToken, token, req.Payload)
	})
	if err != nil {
		return entity.DispatchResult{}, err
	}
	d.log.Info("task created", "id", reqID, "task_id", taskID, "flow", flow)
	return entity.DispatchResult{TaskID: taskID}, nil
}
