package notify

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSendInvokesCommand(t *testing.T) {
	var gotCommand string
	var gotArgs []string
	n := New("notify-send", time.Second, true)
	n.run = func(ctx context.Context, command string, args ...string) error {
		gotCommand = command
		gotArgs = args
		return nil
	}
	n.Send("Kaomoji copied", "(^_^)")
	if gotCommand != "notify-send" {
		t.Fatalf("expected notify-send, got %q", gotCommand)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "Kaomoji copied" || gotArgs[1] != "(^_^)" {
		t.Fatalf("unexpected args %v", gotArgs)
	}
}

func TestSendDisabledIsNoOp(t *testing.T) {
	called := false
	n := New("notify-send", time.Second, false)
	n.run = func(ctx context.Context, command string, args ...string) error {
		called = true
		return nil
	}
	n.Send("title", "body")
	if called {
		t.Fatal("expected disabled notifier to skip the command")
	}
}

func TestSendSwallowsErrors(t *testing.T) {
	n := New("notify-send", time.Second, true)
	n.run = func(ctx context.Context, command string, args ...string) error {
		return errors.New("no notification daemon")
	}
	// Must not panic or surface the error.
	n.Send("title", "body")
}

func TestSendBoundedWait(t *testing.T) {
	n := New("notify-send", 10*time.Millisecond, true)
	n.run = func(ctx context.Context, command string, args ...string) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}
	start := time.Now()
	n.Send("title", "body")
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("expected bounded wait, took %v", elapsed)
	}
}
