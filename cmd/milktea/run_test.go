package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

type appStub struct {
	startErr error
	stopErr  error
	done     chan os.Signal
	stopped  bool
}

func (a *appStub) Start(context.Context) error { return a.startErr }

func (a *appStub) Stop(context.Context) error {
	a.stopped = true
	return a.stopErr
}

func (a *appStub) Done() <-chan os.Signal { return a.done }

func TestRunStopsWhenContextCancelled(t *testing.T) {
	app := &appStub{done: make(chan os.Signal)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	if code := runWithOutput(ctx, app, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}
	if !app.stopped {
		t.Fatal("expected app to be stopped")
	}
}

func TestRunStopsWhenAppDone(t *testing.T) {
	app := &appStub{done: make(chan os.Signal, 1)}
	app.done <- os.Interrupt

	if code := runWithOutput(context.Background(), app, &bytes.Buffer{}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRunReportsFailures(t *testing.T) {
	var stderr bytes.Buffer
	app := &appStub{startErr: errors.New("no database"), done: make(chan os.Signal)}
	if code := runWithOutput(context.Background(), app, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to start application: no database") || app.stopped {
		t.Fatalf("unexpected start failure handling: %q stopped=%v", stderr.String(), app.stopped)
	}

	stderr.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app = &appStub{stopErr: errors.New("timeout"), done: make(chan os.Signal)}
	if code := runWithOutput(ctx, app, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to stop application: timeout") {
		t.Fatalf("unexpected stop failure output %q", stderr.String())
	}
}
