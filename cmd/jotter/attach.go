package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/aretw0/jotter/pkg/richtext"
)

// expandImages resolves glob patterns, keeping their order and dropping
// duplicates.
func expandImages(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	slog.Debug("image decoded", "path", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

var attachCmd = &cobra.Command{
	Use:   "attach [id] [glob...]",
	Short: "Append images to a note",
	Long:  `Append every image matching the patterns (png, jpeg, gif, bmp, webp) to a note. Patterns support ** via doublestar.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		files, err := expandImages(args[1:])
		if err != nil {
			fatal("Error", err)
		}
		if len(files) == 0 {
			fatal("Error", fmt.Errorf("no files match %v", args[1:]))
		}

		ctx := context.Background()
		env := openEnvironment(ctx)
		defer env.close()

		session := richtext.Open(env.get(args[0]), env.session...)
		for _, path := range files {
			img, err := decodeImage(path)
			if err != nil {
				fatal("Error", err)
			}
			if err := session.InsertImage(img); err != nil {
				fatal("Error inserting image", err)
			}
		}
		note := env.save(ctx, session)
		fmt.Printf("Attached %d image(s) to %s\n", len(files), note.ID)
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
}
