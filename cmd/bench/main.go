package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/jotter"
	"github.com/aretw0/jotter/pkg/richtext"
)

// gradient produces a test picture so attachments have realistic PNG sizes.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: 0xff})
		}
	}
	return img
}

func main() {
	count := flag.Int("count", 200, "Number of notes to generate")
	images := flag.Int("images", 1, "Images attached to every note")
	adapter := flag.String("adapter", "fs", "Store adapter to benchmark")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "jotter_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	store, err := jotter.New(benchDir, jotter.WithAdapter(*adapter), jotter.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	store.LoadAll(ctx)

	// Every Add rewrites the whole collection, so generation cost grows
	// quadratically with count.
	fmt.Printf("Generating %d notes (%d image(s) each) on %s...\n", *count, *images, *adapter)
	picture := gradient(640, 480)
	startGen := time.Now()
	for i := 0; i < *count; i++ {
		session := richtext.New()
		if err := session.Insert(fmt.Sprintf("Benchmark note %d\nThis is a test note.", i)); err != nil {
			panic(err)
		}
		session.Select(0, 9)
		session.ToggleBold()
		for j := 0; j < *images; j++ {
			if err := session.InsertImage(picture); err != nil {
				panic(err)
			}
		}
		note, err := session.Save()
		if err != nil {
			panic(err)
		}
		store.Add(ctx, note)
	}
	genDuration := time.Since(startGen)
	if err := store.LastWriteError(); err != nil {
		panic(err)
	}
	if err := store.Close(); err != nil {
		panic(err)
	}

	// Reopen to simulate a new process start.
	store2, err := jotter.New(benchDir, jotter.WithAdapter(*adapter), jotter.WithLogger(logger))
	if err != nil {
		panic(err)
	}
	defer store2.Close()

	startLoad := time.Now()
	notes := store2.LoadAll(ctx)
	loadDuration := time.Since(startLoad)

	startOpen := time.Now()
	for _, n := range notes {
		richtext.Open(n)
	}
	openDuration := time.Since(startOpen)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", len(notes))
	fmt.Printf("  Generate: %v\n", genDuration)
	fmt.Printf("  LoadAll:  %v\n", loadDuration)
	fmt.Printf("  Open all: %v\n", openDuration)
	fmt.Printf("--------------------------------------------------\n")
}
