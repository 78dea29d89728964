package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plain = Attributes{Font: Font{Family: "system", Size: 18}}
	bold  = Attributes{Font: Font{Family: "system", Size: 18, Traits: TraitBold}}
)

func TestBuffer_SetAttributesSplitsRuns(t *testing.T) {
	b := NewBuffer(Run{Text: "Hello world", Attrs: plain})

	require.NoError(t, b.SetAttributes(0, 5, bold))

	runs := b.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, "Hello", runs[0].Text)
	assert.Equal(t, bold, runs[0].Attrs)
	assert.Equal(t, " world", runs[1].Text)
	assert.Equal(t, plain, runs[1].Attrs)
	assert.Equal(t, "Hello world", b.PlainText())
}

func TestBuffer_SetAttributesMergesBack(t *testing.T) {
	b := NewBuffer(Run{Text: "Hello world", Attrs: plain})
	require.NoError(t, b.SetAttributes(3, 8, bold))
	require.NoError(t, b.SetAttributes(3, 8, plain))

	runs := b.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello world", runs[0].Text)
}

func TestBuffer_SetAttributesSkipsAttachments(t *testing.T) {
	img := &Image{Width: 1, Height: 1}
	b := NewBuffer(Run{Text: "ab", Attrs: plain}, Run{Image: img}, Run{Text: "cd", Attrs: plain})
	require.Equal(t, 5, b.Len())

	require.NoError(t, b.SetAttributes(1, 4, bold))

	runs := b.Runs()
	require.Len(t, runs, 5)
	assert.Equal(t, "a", runs[0].Text)
	assert.Equal(t, bold, runs[1].Attrs)
	assert.True(t, runs[2].IsAttachment())
	assert.Equal(t, Attributes{}, runs[2].Attrs)
	assert.Equal(t, "c", runs[3].Text)
	assert.Equal(t, bold, runs[3].Attrs)
	assert.Equal(t, "abcd", b.PlainText())
}

func TestBuffer_AttributesAt(t *testing.T) {
	b := NewBuffer(Run{Text: "ab", Attrs: bold}, Run{Image: &Image{}}, Run{Text: "c", Attrs: plain})

	attrs, ok := b.AttributesAt(1)
	assert.True(t, ok)
	assert.Equal(t, bold, attrs)

	_, ok = b.AttributesAt(2)
	assert.False(t, ok, "attachment has no text attributes")

	attrs, ok = b.AttributesAt(3)
	assert.True(t, ok)
	assert.Equal(t, plain, attrs)

	_, ok = b.AttributesAt(4)
	assert.False(t, ok)
	_, ok = b.AttributesAt(-1)
	assert.False(t, ok)
}

func TestBuffer_InsertAndDelete(t *testing.T) {
	b := NewBuffer(Run{Text: "héllo", Attrs: plain})

	require.NoError(t, b.Insert(2, "XY", bold))
	assert.Equal(t, "héXYllo", b.PlainText())
	assert.Equal(t, 7, b.Len())

	require.NoError(t, b.Delete(1, 3))
	assert.Equal(t, "hYllo", b.PlainText())

	runs := b.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, bold, runs[1].Attrs)
}

func TestBuffer_RejectsOutOfRange(t *testing.T) {
	b := NewBuffer(Run{Text: "abc", Attrs: plain})
	assert.ErrorIs(t, b.SetAttributes(2, 5, bold), ErrInvalidRange)
	assert.ErrorIs(t, b.Insert(4, "x", plain), ErrInvalidRange)
	assert.ErrorIs(t, b.Delete(2, 1), ErrInvalidRange)
}

func TestBuffer_Images(t *testing.T) {
	img := &Image{Width: 2, Height: 3}
	b := NewBuffer(Run{Text: "a", Attrs: plain})
	b.AppendImage(img)
	b.AppendText("b", plain)

	assert.Equal(t, []*Image{img}, b.Images())
	assert.Equal(t, "ab", b.PlainText())
	assert.Equal(t, 3, b.Len())
}
