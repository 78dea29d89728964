package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jotter/pkg/richtext"
)

var formatSelect string

var toggles = map[string]func(*richtext.Session){
	"bold":      (*richtext.Session).ToggleBold,
	"italic":    (*richtext.Session).ToggleItalic,
	"underline": (*richtext.Session).ToggleUnderline,
	"size":      (*richtext.Session).ToggleSize,
}

// parseRange parses "start:length".
func parseRange(s string) (int, int, error) {
	startStr, lengthStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q, expected start:length", s)
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", startStr, err)
	}
	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range length %q: %w", lengthStr, err)
	}
	if start < 0 || length < 0 {
		return 0, 0, fmt.Errorf("invalid range %q: negative value", s)
	}
	return start, length, nil
}

var formatCmd = &cobra.Command{
	Use:   "format [id] [toggle...]",
	Short: "Toggle formatting on a range of a note",
	Long: `Select a range and apply toggles in order. Toggles: bold, italic, underline, size.

Example:
  jotter format <id> --select 0:5 bold underline`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		start, length, err := parseRange(formatSelect)
		if err != nil {
			fatal("Error", err)
		}
		for _, name := range args[1:] {
			if _, ok := toggles[name]; !ok {
				fatal("Error", fmt.Errorf("unknown toggle %q", name))
			}
		}

		ctx := context.Background()
		env := openEnvironment(ctx)
		defer env.close()

		session := richtext.Open(env.get(args[0]), env.session...)
		session.Select(start, length)
		for _, name := range args[1:] {
			toggles[name](session)
		}
		note := env.save(ctx, session)
		fmt.Printf("Note formatted: %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringVar(&formatSelect, "select", "", "Range to format as start:length")
	_ = formatCmd.MarkFlagRequired("select")
}
