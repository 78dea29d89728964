package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

type listEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Rich  bool   `json:"rich"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnvironment(context.Background())
		defer env.close()

		notes := env.store.GetAll()

		if listJSON {
			entries := make([]listEntry, 0, len(notes))
			for _, n := range notes {
				entries = append(entries, listEntry{ID: n.ID, Title: n.Title(), Rich: n.RichContent != nil})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		for _, n := range notes {
			fmt.Printf("%s  %s\n", n.ID, n.Title())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
