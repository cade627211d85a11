// Package executor runs the external tools the tasks wrap. Each task is a
// single synchronous child process inheriting the caller's streams.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts process execution for testability.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Local runs commands on the local host, streaming output as it arrives.
// Zero value is usable: output goes to the process's own stdout/stderr.
type Local struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

func (l *Local) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = l.Dir
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		// Keep the ExitError in the chain so ExitCode can surface the
		// child's status.
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// ExitCode maps an error from Run to a process exit status: the child's
// own code when it ran and failed, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
