// Package main provides the entry point for the ballast CLI.
package main

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gorewood/ballast/internal/output"
)

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the memory bank for out-of-band edits",
		Long: `Watch the memory-bank directory and log create/write/remove events to
stderr. Useful while an agent session is running, to observe updates
landing in the bank (or a human editing it behind the agent's back).

Runs until interrupted (Ctrl-C).

Examples:
  ballast watch
  ballast watch --dir docs/bank`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, dirFlag)
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Memory bank directory (default: ./memory-bank or $BALLAST_BANK_DIR)")
	return cmd
}

// runWatch executes the watch command.
func runWatch(cmd *cobra.Command, dirFlag string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	store := storeFromFlag(dirFlag)

	if !store.Exists() {
		return output.NewUserError("memory bank not initialized (run 'ballast init')")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return output.NewSystemErrorWithCause("failed to create watcher", err)
	}
	defer watcher.Close() //nolint:errcheck // best-effort close on shutdown

	if err := watcher.Add(store.Dir()); err != nil {
		return output.NewSystemErrorWithCause("failed to watch "+store.Dir(), err)
	}

	logger.Info().Str("dir", store.Dir()).Msg("watching memory bank")

	for {
		select {
		case <-cmd.Context().Done():
			logger.Info().Msg("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Info().Str("file", event.Name).Str("op", event.Op.String()).Msg("bank changed")
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(watchErr).Msg("watch error")
		}
	}
}
