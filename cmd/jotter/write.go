package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/richtext"
)

var editReplace bool

var newCmd = &cobra.Command{
	Use:   "new [text]",
	Short: "Create a note",
	Long:  `Create a note from text. Blank text is rejected.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env := openEnvironment(ctx)
		defer env.close()

		session := richtext.New(env.session...)
		if err := session.Insert(args[0]); err != nil {
			fatal("Error typing text", err)
		}
		note, err := session.Save()
		if err != nil {
			fatal("Error saving note", err)
		}
		env.store.Add(ctx, note)
		if err := env.store.LastWriteError(); err != nil {
			fatal("Error writing notes", err)
		}
		fmt.Println(note.ID)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id] [text]",
	Short: "Append text to a note",
	Long:  `Type text at the end of a note, keeping its formatting. With --replace the existing content is replaced.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env := openEnvironment(ctx)
		defer env.close()

		session := richtext.Open(env.get(args[0]), env.session...)
		if editReplace {
			session.Select(0, session.Buffer().Len())
		}
		if err := session.Insert(args[1]); err != nil {
			fatal("Error typing text", err)
		}
		note := env.save(ctx, session)
		fmt.Printf("Note updated: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().BoolVar(&editReplace, "replace", false, "Replace the whole content")
}
