package refresher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"classroom-occupancy/internal/schedule"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	refreshes atomic.Int64
	err       error
}

func (m *mockUseCase) Refresh(ctx context.Context) (schedule.RefreshOutput, error) {
	m.refreshes.Add(1)
	if m.err != nil {
		return schedule.RefreshOutput{}, m.err
	}
	return schedule.RefreshOutput{RunID: "run", Version: uint64(m.refreshes.Load())}, nil
}

func (m *mockUseCase) Dataset(ctx context.Context) (schedule.DatasetOutput, error) {
	return schedule.DatasetOutput{}, nil
}

func (m *mockUseCase) ListValid(ctx context.Context, input schedule.FilterInput) (schedule.ListValidOutput, error) {
	return schedule.ListValidOutput{}, nil
}

func (m *mockUseCase) ListInvalid(ctx context.Context) (schedule.ListInvalidOutput, error) {
	return schedule.ListInvalidOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context) (schedule.StatsOutput, error) {
	return schedule.StatsOutput{}, nil
}

func TestNew(t *testing.T) {
	t.Run("Zero interval falls back to default", func(t *testing.T) {
		r, err := New(&mockUseCase{}, 0, &mockLogger{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.interval != DefaultInterval {
			t.Errorf("expected default interval, got %v", r.interval)
		}
	})

	t.Run("Too-short interval rejected", func(t *testing.T) {
		if _, err := New(&mockUseCase{}, time.Second, &mockLogger{}); err == nil {
			t.Errorf("expected error for sub-minute interval")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("Immediate refresh then stop", func(t *testing.T) {
		uc := &mockUseCase{}
		r, _ := New(uc, time.Hour, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Run(ctx)
			close(done)
		}()

		deadline := time.After(2 * time.Second)
		for uc.refreshes.Load() == 0 {
			select {
			case <-deadline:
				t.Fatalf("no immediate refresh observed")
			default:
				time.Sleep(5 * time.Millisecond)
			}
		}

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("refresher did not stop on cancellation")
		}
	})

	t.Run("Source failure does not stop the schedule", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("sheet unavailable")}
		r, _ := New(uc, time.Hour, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Run(ctx)
			close(done)
		}()

		deadline := time.After(2 * time.Second)
		for uc.refreshes.Load() == 0 {
			select {
			case <-deadline:
				t.Fatalf("no refresh attempt observed")
			default:
				time.Sleep(5 * time.Millisecond)
			}
		}

		// Still running after the failure
		select {
		case <-done:
			t.Fatalf("refresher died on a source failure")
		default:
		}

		cancel()
		<-done
	})
}
