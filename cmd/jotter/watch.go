package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes to the note collection until interrupted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		env := openEnvironment(ctx)
		defer env.close()

		events, err := env.store.Watch(ctx)
		if err != nil {
			fatal("Error watching store", err)
		}

		source := lifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}

		for e := range source.Events() {
			notes := env.store.LoadAll(ctx)
			fmt.Printf("%s (%d notes)\n", e, len(notes))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
