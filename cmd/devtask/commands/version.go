package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Koran1/25ICN-NewsReport/internal/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of devtask",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			return nil
		},
	}
}
