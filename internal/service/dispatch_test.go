package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"sorarelay/internal/entity"
)

type dispatchFixture struct {
	solver    *MockPowSolver
	prints    *MockFingerprintSource
	tokens    *MockTokenBuilder
	challenge *MockChallengeClient
	relay     *MockTaskRelay
	src       *MockEndpointSource
	d         *Dispatcher
}

func newDispatchFixture(t *testing.T, ctrl *gomock.Controller) *dispatchFixture {
	t.Helper()
	f := &dispatchFixture{
		solver:    NewMockPowSolver(ctrl),
		prints:    NewMockFingerprintSource(ctrl),
		tokens:    NewMockTokenBuilder(ctrl),
		challenge: NewMockChallengeClient(ctrl),
		relay:     NewMockTaskRelay(ctrl),
		src:       NewMockEndpointSource(ctrl),
	}
	pool := NewEndpointPool(discardLogger(), f.src, time.Minute)
	f.d = NewDispatcher(discardLogger(), f.solver, f.prints, f.tokens, f.challenge, f.relay, pool)
	f.d.seedFn = func() string { return "0.5" }
	return f
}

func TestDispatch_InvalidRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatchFixture(t, ctrl)

	cases := []struct {
		name string
		req  entity.DispatchRequest
	}{
		{name: "missing token", req: entity.DispatchRequest{Payload: map[string]any{"prompt": "x"}}},
		{name: "missing payload", req: entity.DispatchRequest{AccessToken: "at"}},
		{name: "empty payload", req: entity.DispatchRequest{AccessToken: "at", Payload: map[string]any{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.d.Dispatch(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("error = %v; want ErrInvalidRequest", err)
			}
		})
	}
}

func TestDispatch_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatchFixture(t, ctrl)

	ep := entity.EndpointConfig{ID: 1, URL: "https://relay.example.com", APIKey: "k", Enabled: true}
	f.src.EXPECT().ListEndpointConfigs(gomock.Any()).Return([]entity.EndpointConfig{ep}, nil)

	fp := testFingerprint(defaultUserAgent)
	payload := map[string]any{"kind": "video", "prompt": "a fox"}
	resp := entity.SentinelChallengeResponse{Token: "vt"}

	f.prints.EXPECT().Generate(defaultUserAgent).Return(fp)
	f.solver.EXPECT().
		Solve("0.5", "0fffff", fp).
		Return(entity.PowSolution{Payload: "initpayload", Satisfied: true})

	var gotID string
	f.challenge.EXPECT().
		RequestChallenge(gomock.Any(), "at", defaultUserAgent, "gAAAAACinitpayload", "sora_2_create_task", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _, id string) (entity.SentinelChallengeResponse, error) {
			gotID = id
			return resp, nil
		})
	f.tokens.EXPECT().
		BuildToken("sora_2_create_task", gomock.Any(), "gAAAAACinitpayload", resp, defaultUserAgent).
		Return("SENTINEL", nil)
	f.relay.EXPECT().
		CreateTask(gomock.Any(), ep, "at", "SENTINEL", payload).
		Return("task-42", nil)

	res, err := f.d.Dispatch(context.Background(), entity.DispatchRequest{AccessToken: "at", Payload: payload})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if res.TaskID != "task-42" {
		t.Fatalf("TaskID = %q; want task-42", res.TaskID)
	}
	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("request id is not a UUID: %v", err)
	}
}

func TestDispatch_UnsatisfiedProofStillTransmitted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatchFixture(t, ctrl)

	ep := entity.EndpointConfig{ID: 1, URL: "https://relay.example.com", APIKey: "k", Enabled: true}
	f.src.EXPECT().ListEndpointConfigs(gomock.Any()).Return([]entity.EndpointConfig{ep}, nil)

	fp := testFingerprint("custom-ua")
	f.prints.EXPECT().Generate("custom-ua").Return(fp)
	f.solver.EXPECT().
		Solve("0.5", "0fffff", fp).
		Return(entity.PowSolution{Payload: "wQ8Lk5FbGpA2NcR9dShT6gYjU7VxZ4Dabc", Satisfied: false})
	f.challenge.EXPECT().
		RequestChallenge(gomock.Any(), "at", "custom-ua", "gAAAAACwQ8Lk5FbGpA2NcR9dShT6gYjU7VxZ4Dabc", "custom_flow", gomock.Any()).
		Return(entity.SentinelChallengeResponse{}, nil)
	f.tokens.EXPECT().
		BuildToken("custom_flow", gomock.Any(), gomock.Any(), entity.SentinelChallengeResponse{}, "custom-ua").
		Return("SENTINEL", nil)
	f.relay.EXPECT().
		CreateTask(gomock.Any(), ep, "at", "SENTINEL", gomock.Any()).
		Return("task-9", nil)

	res, err := f.d.Dispatch(context.Background(), entity.DispatchRequest{
		AccessToken: "at",
		Payload:     map[string]any{"prompt": "x"},
		UserAgent:   "custom-ua",
		Flow:        "custom_flow",
	})
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if res.TaskID != "task-9" {
		t.Fatalf("TaskID = %q; want task-9", res.TaskID)
	}
}

func TestDispatch_UpstreamErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatchFixture(t, ctrl)

	fp := testFingerprint(defaultUserAgent)
	f.prints.EXPECT().Generate(defaultUserAgent).Return(fp)
	f.solver.EXPECT().
		Solve(gomock.Any(), "0fffff", fp).
		Return(entity.PowSolution{Payload: "p", Satisfied: true})

	upstream := &entity.UpstreamError{StatusCode: 403, Body: []byte(`{"detail":"blocked"}`)}
	f.challenge.EXPECT().
		RequestChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.SentinelChallengeResponse{}, upstream)

	_, err := f.d.Dispatch(context.Background(), entity.DispatchRequest{
		AccessToken: "at",
		Payload:     map[string]any{"prompt": "x"},
	})

	var got *entity.UpstreamError
	if !errors.As(err, &got) {
		t.Fatalf("error = %v; want *entity.UpstreamError", err)
	}
	if got.StatusCode != 403 || string(got.Body) != `{"detail":"blocked"}` {
		t.Fatalf("upstream error mutated: %+v", got)
	}
}

func TestDispatch_PoolDisabledSurfaces(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatchFixture(t, ctrl)

	f.src.EXPECT().ListEndpointConfigs(gomock.Any()).Return([]entity.EndpointConfig{
		{ID: 1, URL: "https://relay.example.com", APIKey: "k", Enabled: false},
	}, nil)

	fp := testFingerprint(defaultUserAgent)
	f.prints.EXPECT().Generate(defaultUserAgent).Return(fp)
	f.solver.EXPECT().
		Solve(gomock.Any(), "0fffff", fp).
		Return(entity.PowSolution{Payload: "p", Satisfied: true})
	f.challenge.EXPECT().
		RequestChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.SentinelChallengeResponse{}, nil)
	f.tokens.EXPECT().
		BuildToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("SENTINEL", nil)

	_, err := f.d.Dispatch(context.Background(), entity.DispatchRequest{
		AccessToken: "at",
		Payload:     map[string]any{"prompt": "x"},
	})
	if !errors.Is(err, ErrRelayDisabled) {
		t.Fatalf("error = %v; want ErrRelayDisabled", err)
	}
}
