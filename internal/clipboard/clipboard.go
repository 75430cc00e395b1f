// Package clipboard implements the copy pipeline: an external clipboard
// command fed over stdin under a bounded timeout, with the toolkit-native
// clipboard as fallback. Only when both mechanisms fail does a copy attempt
// fail.
package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/atomicstack/kaomoji-popup/internal/logging/events"
	atotto "github.com/atotto/clipboard"
)

// Mechanism names the clipboard path that succeeded.
type Mechanism string

const (
	MechanismCommand Mechanism = "command"
	MechanismNative  Mechanism = "native"
)

// Copier runs the copy pipeline.
type Copier struct {
	command string
	timeout time.Duration

	// Injection points for tests; defaults run the real command and the
	// native clipboard API.
	runCommand func(ctx context.Context, command, text string) error
	runNative  func(text string) error
}

// New builds a copier for the configured external command and timeout.
func New(command string, timeout time.Duration) *Copier {
	return &Copier{
		command:    command,
		timeout:    timeout,
		runCommand: runExternal,
		runNative:  atotto.WriteAll,
	}
}

func runExternal(ctx context.Context, command, text string) error {
	cmd := exec.CommandContext(ctx, command)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// Copy attempts the external command first, then the native clipboard. The
// bounded timeout keeps a hung command from blocking the caller. The
// mechanism that succeeded is returned; an error means both paths failed and
// the copy must be treated as abandoned.
func (c *Copier) Copy(text string) (Mechanism, error) {
	events.Copy.Attempt(text)
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	cmdErr := c.runCommand(ctx, c.command, text)
	if cmdErr == nil {
		events.Copy.Success(text, string(MechanismCommand))
		return MechanismCommand, nil
	}
	events.Copy.Fallback(text, cmdErr)
	if nativeErr := c.runNative(text); nativeErr != nil {
		err := fmt.Errorf("clipboard command failed (%v); native clipboard failed: %w", cmdErr, nativeErr)
		events.Copy.Failure(text, err)
		return "", err
	}
	events.Copy.Success(text, string(MechanismNative))
	return MechanismNative, nil
}
