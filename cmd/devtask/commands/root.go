package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koran1/25ICN-NewsReport/internal/config"
	"github.com/Koran1/25ICN-NewsReport/internal/executor"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devtask",
		Short: "Development task runner for the news-report data pipeline",
		Long: `devtask wraps the repetitive development tasks of the news-report
pipeline: generating data models from JSON Schema definitions, installing
Python dependencies, running the test suite, and cleaning up artifacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: devtask.yml if present)")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewInstallCmd())
	cmd.AddCommand(NewTestCmd())
	cmd.AddCommand(NewTestCovCmd())
	cmd.AddCommand(NewCleanCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(executor.ExitCode(err))
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
