package commands

import (
	"github.com/spf13/cobra"

	"github.com/Koran1/25ICN-NewsReport/internal/executor"
	"github.com/Koran1/25ICN-NewsReport/internal/testrun"
)

func NewTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return testrun.Run(cmd.Context(), cfg, &executor.Local{}, false)
		},
	}
}

func NewTestCovCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test-cov",
		Short: "Run the test suite with coverage reports (terminal and HTML)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return testrun.Run(cmd.Context(), cfg, &executor.Local{}, true)
		},
	}
}
