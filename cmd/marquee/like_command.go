package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/movieview"
)

func newLikeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Toggle the favorite state for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.catalogClient()
			if err != nil {
				return err
			}
			provider, err := ctx.identityProvider()
			if err != nil {
				return err
			}

			ctrl := movieview.New(client, provider, movieview.WithLogger(ctx.logger()))
			if err := ctrl.SetMovie(cmd.Context(), args[0]); err != nil {
				return err
			}
			// Let the load and the favorite sync settle so the toggle flips
			// from the server-confirmed value.
			ctrl.Wait()

			if err := ctrl.ToggleFavorite(cmd.Context()); err != nil {
				return err
			}
			ctrl.Wait()

			out := cmd.OutOrStdout()
			if !provider.Snapshot().Authenticated {
				returnTo, _ := provider.PendingReturnTo()
				fmt.Fprintln(out, "Login required; run `marquee login <user-id>` to continue.")
				if returnTo != "" {
					fmt.Fprintf(out, "The flow will resume at %s\n", returnTo)
				}
				return nil
			}

			state := ctrl.State()
			if state.Favorite.Err != nil {
				return state.Favorite.Err
			}
			fmt.Fprintf(out, "Movie %s liked: %s\n", args[0], yesNo(state.Favorite.Liked))
			return nil
		},
	}
}
