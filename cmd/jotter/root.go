package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	configPath  string
	dataPath    string
	adapterName string
	readOnly    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jotter",
	Short: "A small rich-text note store",
	Long: `Jotter keeps a list of notes in a key-value store (files, SQLite or Redis)
and edits them with bold, italic, underline, size and inline images.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to jotter.yaml (default: searched upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Store location (directory for fs/sqlite, address for redis)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Open the store read-only; writes are rejected")
	rootCmd.PersistentFlags().StringVar(&adapterName, "adapter", "", "Store adapter: fs, sqlite, redis or memory")
}
