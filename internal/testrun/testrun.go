// Package testrun wraps pytest invocation for the test and test-cov tasks.
package testrun

import (
	"context"
	"fmt"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
	"github.com/Koran1/25ICN-NewsReport/internal/executor"
)

// Command builds the pytest argument list. With coverage enabled, line
// coverage is collected over the generated source tree and reported both
// to the terminal and as HTML under htmlcov/.
func Command(cfg *config.Config, coverage bool) (string, []string) {
	args := []string{cfg.TestsDir}
	if coverage {
		args = append(args,
			"--cov="+cfg.OutputPrefix,
			"--cov-report=term-missing",
			"--cov-report=html",
		)
	}
	return cfg.Pytest, args
}

// Run executes the test suite, delegating discovery and reporting to
// pytest. The runner's exit status propagates untouched.
func Run(ctx context.Context, cfg *config.Config, runner executor.Runner, coverage bool) error {
	name, args := Command(cfg, coverage)
	if coverage {
		fmt.Printf("==> Running tests in %s with coverage over %s\n", cfg.TestsDir, cfg.OutputPrefix)
	} else {
		fmt.Printf("==> Running tests in %s\n", cfg.TestsDir)
	}
	return runner.Run(ctx, name, args...)
}
