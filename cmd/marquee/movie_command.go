package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"marquee/internal/history"
	"marquee/internal/logging"
	"marquee/internal/movieview"
)

func newMovieCommand(ctx *commandContext) *cobra.Command {
	var selectPerson string

	cmd := &cobra.Command{
		Use:   "movie <id>",
		Short: "Show the detail view for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.catalogClient()
			if err != nil {
				return err
			}
			provider, err := ctx.identityProvider()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			opts := []movieview.Option{
				movieview.WithLogger(logger),
				movieview.WithNavigator(writerNavigator{out: cmd.OutOrStdout()}),
			}
			if cfg.History.Enabled {
				store, err := history.Open(cfg.History.Path)
				if err != nil {
					logger.Warn("history unavailable", logging.Error(err))
				} else {
					defer store.Close()
					opts = append(opts, movieview.WithRecorder(store))
				}
			}

			ctrl := movieview.New(client, provider, opts...)
			if err := ctrl.SetMovie(cmd.Context(), args[0]); err != nil {
				return err
			}
			ctrl.Wait()

			state := ctrl.State()
			if state.Phase == movieview.LoadFailed {
				return fmt.Errorf("load movie %s: %w", args[0], state.LoadErr)
			}

			out := cmd.OutOrStdout()
			renderMovieDetail(out, state, provider.Snapshot().Authenticated, stdoutIsTerminal())

			if selectPerson != "" {
				ctrl.SelectPerson(selectPerson)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selectPerson, "select-person", "", "Dispatch navigation for the given person id after rendering")
	return cmd
}

// writerNavigator prints dispatched navigation targets; a UI host would
// route them instead.
type writerNavigator struct {
	out io.Writer
}

func (n writerNavigator) Navigate(path string) {
	fmt.Fprintf(n.out, "navigate: %s\n", path)
}
