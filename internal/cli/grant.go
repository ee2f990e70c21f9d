package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/account-console/internal/access"
)

func newGrantCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "grant <type>",
		Short: "Validate a global grant descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := access.NewGlobalGrant(access.GlobalGrantType(args[0]), access.GrantLevel(level))
			if err != nil {
				return err
			}
			if g.Level == access.GrantLevelNone {
				fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", g.Type)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s ok (%s)\n", g.Type, g.Level)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "read_only or read_write")
	return cmd
}
