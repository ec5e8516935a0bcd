package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login <user-id>",
		Short: "Record a completed login for the given user identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := ctx.identityProvider()
			if err != nil {
				return err
			}

			returnTo, _ := provider.PendingReturnTo()
			if err := provider.BeginSession(args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s\n", args[0])
			if returnTo != "" {
				fmt.Fprintf(out, "Resume at %s\n", returnTo)
			}
			return nil
		},
	}
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := ctx.identityProvider()
			if err != nil {
				return err
			}
			if err := provider.EndSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
