package export_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jotter/pkg/export"
	"github.com/aretw0/jotter/pkg/richtext"
)

var plain = richtext.Attributes{Font: richtext.Font{Family: "system", Size: 18}}

func with(traits richtext.Traits, underline bool) richtext.Attributes {
	a := plain
	a.Font.Traits = traits
	if underline {
		a.Underline = richtext.UnderlineSingle
	}
	return a
}

func TestMarkdown_Emphasis(t *testing.T) {
	buf := richtext.NewBuffer(
		richtext.Run{Text: "Hello", Attrs: with(richtext.TraitBold, false)},
		richtext.Run{Text: " big ", Attrs: with(richtext.TraitItalic, false)},
		richtext.Run{Text: "world", Attrs: with(richtext.TraitBold|richtext.TraitItalic, true)},
	)
	assert.Equal(t, "**Hello** _big_ <u>**_world_**</u>", export.Markdown(buf))
}

func TestMarkdown_SizeIsDropped(t *testing.T) {
	big := plain
	big.Font.Size = 24
	buf := richtext.NewBuffer(richtext.Run{Text: "Title", Attrs: big})
	assert.Equal(t, "Title", export.Markdown(buf))
}

func TestMarkdown_EscapesAndLines(t *testing.T) {
	buf := richtext.NewBuffer(
		richtext.Run{Text: "a*b_c\n", Attrs: plain},
		richtext.Run{Text: "one\ntwo", Attrs: with(richtext.TraitBold, false)},
	)
	assert.Equal(t, "a\\*b\\_c\n**one**\n**two**", export.Markdown(buf))
}

func TestMarkdown_Attachment(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.White)
	img, err := richtext.NewImage(src)
	require.NoError(t, err)

	buf := richtext.NewBuffer(richtext.Run{Text: "pic\n", Attrs: plain})
	buf.AppendImage(img)

	md := export.Markdown(buf)
	assert.Equal(t, "pic\n![image](blake3:"+img.DigestHex()+")", md)
}

func TestHTML(t *testing.T) {
	buf := richtext.NewBuffer(
		richtext.Run{Text: "Hello", Attrs: with(richtext.TraitBold, false)},
		richtext.Run{Text: " there\n", Attrs: plain},
		richtext.Run{Text: "under", Attrs: with(0, true)},
	)
	out, err := export.HTML(buf)
	require.NoError(t, err)

	assert.Contains(t, out, "<strong>Hello</strong> there")
	assert.Contains(t, out, "<br>")
	assert.Contains(t, out, "<u>under</u>")
	assert.True(t, strings.HasPrefix(out, "<p>"))
}
