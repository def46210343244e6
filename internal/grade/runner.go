// Package grade runs a matcher on a test and checks what it reports.
package grade

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Runner executes a matcher: the test goes to stdin, reported locations
// come back on stdout.
type Runner interface {
	Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, stdin io.Reader, stdout io.Writer) error

func (f RunnerFunc) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	return f(ctx, stdin, stdout)
}

const (
	// stderrTail bounds how much of the child's stderr ends up in an error.
	stderrTail = 512
	// waitDelay caps how long Run waits for stdio after the child is killed.
	waitDelay = 2 * time.Second
)

// Exec runs an external program.
type Exec struct {
	Path    string
	Args    []string
	Timeout time.Duration // zero means no limit beyond ctx
}

func (e *Exec) String() string {
	return strings.Join(append([]string{e.Path}, e.Args...), " ")
}

func (e *Exec) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Path, e.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > stderrTail {
			msg = "..." + msg[len(msg)-stderrTail:]
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%w (%v)", ctx.Err(), err)
		}
		if msg == "" {
			return fmt.Errorf("run %q: %w", e.String(), err)
		}
		return fmt.Errorf("run %q: %w: %s", e.String(), err, msg)
	}
	return nil
}
