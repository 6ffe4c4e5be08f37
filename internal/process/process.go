// Package process runs the short-lived query commands used by the hardware
// probes. Commands are executed directly from an argv slice, never through a
// shell.
package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/tusharlock10/hwid/internal/textenc"
)

var (
	// ErrTimeout is returned when the command did not finish before the
	// context deadline. The child has been killed by the time it is returned.
	ErrTimeout = errors.New("command timed out")

	// ErrEmptyOutput is returned when the command succeeded but wrote
	// nothing but whitespace to stdout.
	ErrEmptyOutput = errors.New("command produced no output")
)

// waitDelay bounds how long Output waits for stdout to close after the child
// has been killed; grandchildren holding the pipe open must not stall a probe.
const waitDelay = 500 * time.Millisecond

// Runner executes query commands. Env entries are appended to the current
// environment of the child.
type Runner struct {
	Env []string
}

// Output runs name with args using a zero Runner.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	return Runner{}.Output(ctx, name, args...)
}

// Output runs name with args and returns its stdout decoded with the host's
// regional encoding. A non-zero exit, a deadline hit or empty output are all
// reported as errors.
func (r Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	cmd.WaitDelay = waitDelay
	configure(cmd)

	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: %w", name, ErrTimeout)
		}
		return "", fmt.Errorf("%s: %w", name, ctxErr)
	}
	if err != nil {
		return "", fmt.Errorf("run %s: %w", name, err)
	}

	text, err := textenc.Decode(out)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", name, ErrEmptyOutput)
	}
	return text, nil
}
