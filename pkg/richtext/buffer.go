package richtext

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Run is a span of the buffer: either styled text or a single attachment.
type Run struct {
	Text  string
	Attrs Attributes
	Image *Image
}

// IsAttachment reports whether the run embeds an image.
func (r Run) IsAttachment() bool {
	return r.Image != nil
}

// Len returns the number of positions the run occupies.
// An attachment occupies one position.
func (r Run) Len() int {
	if r.Image != nil {
		return 1
	}
	return utf8.RuneCountInString(r.Text)
}

// Buffer is an ordered sequence of runs. Positions are rune offsets.
// Adjacent text runs with identical attributes are kept merged.
type Buffer struct {
	runs []Run
}

// NewBuffer creates a buffer from runs in document order.
func NewBuffer(runs ...Run) *Buffer {
	b := &Buffer{runs: append([]Run(nil), runs...)}
	b.normalize()
	return b
}

// Len returns the total number of positions.
func (b *Buffer) Len() int {
	n := 0
	for _, r := range b.runs {
		n += r.Len()
	}
	return n
}

// Runs returns a copy of the runs.
func (b *Buffer) Runs() []Run {
	return append([]Run(nil), b.runs...)
}

// PlainText concatenates the text runs. Attachments contribute nothing.
func (b *Buffer) PlainText() string {
	var sb strings.Builder
	for _, r := range b.runs {
		if !r.IsAttachment() {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// Images returns the attachments in document order.
func (b *Buffer) Images() []*Image {
	var out []*Image
	for _, r := range b.runs {
		if r.IsAttachment() {
			out = append(out, r.Image)
		}
	}
	return out
}

// AttributesAt returns the attributes of the text at pos.
// It reports false when pos is out of range or holds an attachment.
func (b *Buffer) AttributesAt(pos int) (Attributes, bool) {
	if pos < 0 {
		return Attributes{}, false
	}
	offset := 0
	for _, r := range b.runs {
		l := r.Len()
		if pos < offset+l {
			if r.IsAttachment() {
				return Attributes{}, false
			}
			return r.Attrs, true
		}
		offset += l
	}
	return Attributes{}, false
}

// SetAttributes replaces the attributes of every text position in
// [start, end). Attachments and positions outside the range are untouched.
func (b *Buffer) SetAttributes(start, end int, attrs Attributes) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	i := b.split(start)
	j := b.split(end)
	for k := i; k < j; k++ {
		if !b.runs[k].IsAttachment() {
			b.runs[k].Attrs = attrs
		}
	}
	b.normalize()
	return nil
}

// Insert places text with attrs at pos.
func (b *Buffer) Insert(pos int, text string, attrs Attributes) error {
	if err := b.checkRange(pos, pos); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	i := b.split(pos)
	b.runs = append(b.runs[:i], append([]Run{{Text: text, Attrs: attrs}}, b.runs[i:]...)...)
	b.normalize()
	return nil
}

// Delete removes the positions in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	i := b.split(start)
	j := b.split(end)
	b.runs = append(b.runs[:i], b.runs[j:]...)
	b.normalize()
	return nil
}

// AppendText adds text with attrs at the end of the buffer.
func (b *Buffer) AppendText(text string, attrs Attributes) {
	b.runs = append(b.runs, Run{Text: text, Attrs: attrs})
	b.normalize()
}

// AppendImage adds an attachment run at the end of the buffer.
func (b *Buffer) AppendImage(img *Image) {
	b.runs = append(b.runs, Run{Image: img})
}

func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end < start || end > b.Len() {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRange, start, end, b.Len())
	}
	return nil
}

// split ensures a run boundary at pos and returns the index of the run
// starting there (len(runs) when pos is the end of the buffer).
func (b *Buffer) split(pos int) int {
	offset := 0
	for i, r := range b.runs {
		if pos == offset {
			return i
		}
		l := r.Len()
		if pos < offset+l {
			// Attachments have length one, so only text runs reach here.
			runes := []rune(r.Text)
			cut := pos - offset
			left := Run{Text: string(runes[:cut]), Attrs: r.Attrs}
			right := Run{Text: string(runes[cut:]), Attrs: r.Attrs}
			b.runs = append(b.runs[:i], append([]Run{left, right}, b.runs[i+1:]...)...)
			return i + 1
		}
		offset += l
	}
	return len(b.runs)
}

func (b *Buffer) normalize() {
	out := b.runs[:0]
	for _, r := range b.runs {
		if !r.IsAttachment() && r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && !r.IsAttachment() && !out[n-1].IsAttachment() && out[n-1].Attrs == r.Attrs {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	b.runs = out
}
