package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc, <-chan error) {
	t.Helper()
	l := NewLoop(newTestScheduler())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	return l, cancel, done
}

func TestLoopDoSettlesBeforeReturning(t *testing.T) {
	l, cancel, done := startLoop(t)
	defer func() {
		cancel()
		<-done
	}()

	runs := 0
	job := NewJob(func() error { runs++; return nil })

	err := l.Do(context.Background(), func() error {
		l.Scheduler().Enqueue(job)
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}

	// runs is only touched on the loop goroutine; read it there.
	var seen int
	if err := l.Do(context.Background(), func() error { seen = runs; return nil }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if seen != 1 {
		t.Errorf("job runs = %d, want 1", seen)
	}
}

func TestLoopDoReturnsFlushError(t *testing.T) {
	l, cancel, done := startLoop(t)
	defer func() {
		cancel()
		<-done
	}()

	boom := errors.New("boom")
	err := l.Do(context.Background(), func() error {
		l.Scheduler().Enqueue(NewJob(func() error { return boom }))
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Do error = %v, want %v", err, boom)
	}
}

func TestLoopRecoversTaskPanic(t *testing.T) {
	l, cancel, done := startLoop(t)
	defer func() {
		cancel()
		<-done
	}()

	err := l.Do(context.Background(), func() error { panic("bad task") })
	if !errors.Is(err, ErrTaskPanicked) {
		t.Fatalf("Do error = %v, want ErrTaskPanicked", err)
	}

	// The loop keeps serving.
	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Errorf("Do after panic: %v", err)
	}
}

func TestLoopRunTwice(t *testing.T) {
	l, cancel, done := startLoop(t)
	defer func() {
		cancel()
		<-done
	}()

	if err := l.Do(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if err := l.Run(context.Background()); !errors.Is(err, ErrLoopRunning) {
		t.Errorf("second Run = %v, want ErrLoopRunning", err)
	}
}

func TestLoopClosedAfterCancel(t *testing.T) {
	l, cancel, done := startLoop(t)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	if err := l.Do(context.Background(), func() error { return nil }); !errors.Is(err, ErrLoopClosed) {
		t.Errorf("Do after close = %v, want ErrLoopClosed", err)
	}
}

func TestLoopDoRespectsCallerContext(t *testing.T) {
	l := NewLoop(newTestScheduler())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Nobody runs the loop, so the task is never accepted.
	err := l.Do(ctx, func() error { return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do = %v, want deadline exceeded", err)
	}
}
