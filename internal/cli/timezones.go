package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spec-kit/account-console/internal/timezone"
)

func newTimezonesCmd() *cobra.Command {
	var (
		at     string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "timezones",
		Short: "List selectable timezones",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
				now = parsed
			}
			opts, err := timezone.Options(now)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(opts)
			}
			for _, o := range opts {
				fmt.Fprintf(out, "%-32s %s\n", o.Value, o.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "render offsets at this RFC3339 instant")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
