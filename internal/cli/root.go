// Package cli implements consolectl, an offline front-end for the console's
// message and timezone helpers.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCmd(version, buildDate string) *cobra.Command {
	root := &cobra.Command{
		Use:           "consolectl",
		Short:         "Account console utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd(version, buildDate))
	root.AddCommand(newMessageCmd())
	root.AddCommand(newTimezonesCmd())
	root.AddCommand(newGrantCmd())
	return root
}

func newVersionCmd(version, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "consolectl %s (%s)\n", version, buildDate)
		},
	}
}
