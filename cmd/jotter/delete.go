package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete removes a note. Deleting the last note brings back the welcome note.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env := openEnvironment(ctx)
		defer env.close()

		env.store.Delete(ctx, env.get(args[0]))
		if err := env.store.LastWriteError(); err != nil {
			fatal("Error writing notes", err)
		}
		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
