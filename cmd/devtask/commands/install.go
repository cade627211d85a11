package commands

import (
	"github.com/spf13/cobra"

	"github.com/Koran1/25ICN-NewsReport/internal/deps"
	"github.com/Koran1/25ICN-NewsReport/internal/executor"
)

func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install-dep",
		Short: "Install Python dependencies from the requirements manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return deps.Install(cmd.Context(), cfg, &executor.Local{})
		},
	}
}
