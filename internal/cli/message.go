package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/account-console/internal/access"
	"github.com/spec-kit/account-console/internal/domain"
)

func newMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Render permission-denial messages",
	}
	cmd.AddCommand(newRestrictedCmd())
	cmd.AddCommand(newAccessCmd())
	return cmd
}

func newRestrictedCmd() *cobra.Command {
	var (
		action    string
		plural    bool
		noContact bool
	)
	cmd := &cobra.Command{
		Use:   "restricted <resource>",
		Short: "Message for a resource the user may not act on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			act, ok := access.ParseAction(action)
			if !ok {
				return fmt.Errorf("unknown action %q", action)
			}
			msg := access.RestrictedResourceMessage(access.RestrictedResourceParams{
				Action:             act,
				ResourceType:       args[0],
				Plural:             plural,
				OmitContactMessage: noContact,
			})
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&action, "action", "", "action verb (default edit)")
	cmd.Flags().BoolVar(&plural, "plural", false, "use the resource noun as given")
	cmd.Flags().BoolVar(&noContact, "no-contact", false, "omit the administrator contact sentence")
	return cmd
}

func newAccessCmd() *cobra.Command {
	var (
		userType    string
		parentChild bool
	)
	cmd := &cobra.Command{
		Use:   "access",
		Short: "Access-restricted notice for a user type",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), access.AccessRestrictedMessage(domain.UserType(userType), parentChild))
		},
	}
	cmd.Flags().StringVar(&userType, "user-type", "", "parent, child, proxy or default")
	cmd.Flags().BoolVar(&parentChild, "parent-child", false, "parent/child accounts feature enabled")
	return cmd
}
