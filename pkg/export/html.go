package export

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aretw0/jotter/pkg/richtext"
)

var (
	htmlConverter     goldmark.Markdown
	htmlConverterOnce sync.Once
)

// getConverter returns the shared goldmark instance. Raw HTML is let through
// so underline tags survive; every line break is kept.
func getConverter() goldmark.Markdown {
	htmlConverterOnce.Do(func() {
		htmlConverter = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				html.WithHardWraps(),
			),
		)
	})
	return htmlConverter
}

// HTML renders the buffer as an HTML fragment.
func HTML(buf *richtext.Buffer) (string, error) {
	var out bytes.Buffer
	if err := getConverter().Convert([]byte(Markdown(buf)), &out); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return out.String(), nil
}
