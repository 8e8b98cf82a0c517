package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/polkiloo/milktea/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewSessionSweeperDefaults(t *testing.T) {
	sweeper := NewSessionSweeper(testhelpers.NewSweeperStub(0), 0, discardLogger())
	if sweeper.interval != time.Minute {
		t.Fatalf("expected default interval of one minute, got %s", sweeper.interval)
	}
}

func TestSessionSweeperSweepsPeriodically(t *testing.T) {
	store := testhelpers.NewSweeperStub(2)
	sweeper := NewSessionSweeper(store, 5*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)
	sweeper.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-store.Calls():
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for session sweep")
		}
	}

	sweeper.Stop()
	sweeper.Stop()
}

func TestSessionSweeperOutlivesStartContext(t *testing.T) {
	store := testhelpers.NewSweeperStub(0)
	sweeper := NewSessionSweeper(store, 5*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	sweeper.Start(ctx)
	cancel()

	select {
	case <-store.Calls():
	case <-time.After(time.Second):
		t.Fatal("expected sweeping to continue after start context is cancelled")
	}
	sweeper.Stop()
}

func TestSessionSweeperLogsRemovals(t *testing.T) {
	var logged []string
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.MessageKey {
				logged = append(logged, a.Value.String())
			}
			return a
		},
	})
	sweeper := NewSessionSweeper(testhelpers.NewSweeperStub(3), time.Minute, slog.New(handler))
	sweeper.sweep(context.Background())
	sweeper.store = testhelpers.NewSweeperStub(0)
	sweeper.sweep(context.Background())

	if len(logged) != 2 || logged[0] != "expired sessions removed" || logged[1] != "session sweep found nothing to remove" {
		t.Fatalf("unexpected log messages %v", logged)
	}
}
