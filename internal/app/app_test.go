package app

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

func TestAppRun_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)

	var gotCtx context.Context

	mr.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			gotCtx = ctx
			select {
			case <-ctx.Done():
				t.Fatalf("ctx was canceled prematurely")
			default:
			}
			return nil
		})

	a := New(mr)

	if err := a.Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if gotCtx == nil {
		t.Fatalf("Runner.Run received nil ctx")
	}
}

func TestAppRun_PropagatesError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")
	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any()).
		Return(wantErr)

	a := New(mr)

	err := a.Run()
	if err == nil {
		t.Fatalf("Run() expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v; want %v", err, wantErr)
	}
}

func TestAppRun_CancelsOnSignal_GracefulExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr := NewMockRunner(ctrl)

	mr.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		})

	a := New(mr)

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	time.Sleep(50 * time.Millisecond)

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("sending SIGINT failed: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() returned error on graceful cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after SIGINT")
	}
}
