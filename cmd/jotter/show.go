package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/export"
	"github.com/aretw0/jotter/pkg/richtext"
)

var (
	showMarkdown bool
	showHTML     bool
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a note",
	Long:  `Print a note as plain text (default), Markdown with --markdown or HTML with --html.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env := openEnvironment(context.Background())
		defer env.close()

		session := richtext.Open(env.get(args[0]), env.session...)

		switch {
		case showHTML:
			out, err := export.HTML(session.Buffer())
			if err != nil {
				fatal("Error rendering HTML", err)
			}
			fmt.Print(out)
		case showMarkdown:
			fmt.Println(export.Markdown(session.Buffer()))
		default:
			fmt.Println(session.Buffer().PlainText())
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "Output Markdown")
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Output HTML")
	showCmd.MarkFlagsMutuallyExclusive("markdown", "html")
}
