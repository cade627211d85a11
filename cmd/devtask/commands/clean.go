package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koran1/25ICN-NewsReport/internal/clean"
)

func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-test",
		Short: "Delete test caches, compiled bytecode, and coverage artifacts",
		Long: `Recursively delete __pycache__, .pytest_cache, htmlcov and *.egg-info
directories plus *.pyc and .coverage files under the current directory.

Best effort: entries that cannot be removed are reported as warnings and
the command still exits 0. Safe to run when nothing is left to delete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := clean.Clean(".")
			if err != nil {
				// Even a failed walk is best-effort; report and exit 0.
				fmt.Fprintln(os.Stderr, "Warning:", err)
				return nil
			}

			for _, path := range res.Removed {
				fmt.Printf("removed %s\n", path)
			}
			for _, warn := range res.Warnings {
				fmt.Fprintln(os.Stderr, "Warning:", warn)
			}

			fmt.Printf("==> Removed %d artifact(s)\n", len(res.Removed))
			return nil
		},
	}
}
