// Package notify sends best-effort desktop notifications through an external
// command. Failures are logged and swallowed; they never affect the copy
// flow.
package notify

import (
	"context"
	"os/exec"
	"time"

	"github.com/atomicstack/kaomoji-popup/internal/logging"
)

// Notifier invokes the notification command with a bounded timeout.
type Notifier struct {
	command string
	timeout time.Duration
	enabled bool

	run func(ctx context.Context, command string, args ...string) error
}

// New builds a notifier. A disabled notifier turns Send into a no-op.
func New(command string, timeout time.Duration, enabled bool) *Notifier {
	return &Notifier{
		command: command,
		timeout: timeout,
		enabled: enabled,
		run:     runExternal,
	}
}

func runExternal(ctx context.Context, command string, args ...string) error {
	return exec.CommandContext(ctx, command, args...).Run()
}

// Send fires a notification with the given title and body. Errors are
// swallowed after logging so a broken notification daemon cannot break the
// picker.
func (n *Notifier) Send(title, body string) {
	if !n.enabled {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	if err := n.run(ctx, n.command, title, body); err != nil {
		logging.Error(err)
	}
}
