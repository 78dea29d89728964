// Package richtext manages attributed note content: styled text runs,
// image attachments, and the editing session that toggles formatting.
package richtext

// Traits is a bitmask of symbolic font traits.
type Traits uint32

const (
	TraitBold Traits = 1 << iota
	TraitItalic
	TraitMonospace
	TraitCondensed
)

// Has reports whether all bits of t2 are set.
func (t Traits) Has(t2 Traits) bool {
	return t&t2 == t2
}

// Font describes the face of a text run.
type Font struct {
	Family string
	Size   float64
	Traits Traits
}

// With returns a copy of f with trait t inserted or removed.
func (f Font) With(t Traits, on bool) Font {
	if on {
		f.Traits |= t
	} else {
		f.Traits &^= t
	}
	return f
}

// UnderlineStyle is the underline attribute of a run.
// UnderlineNone is an explicit absence, written over any prior underline.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
)

// Attributes is the complete attribute set carried by a text run.
type Attributes struct {
	Font      Font
	Underline UnderlineStyle
}

func (a Attributes) Bold() bool       { return a.Font.Traits.Has(TraitBold) }
func (a Attributes) Italic() bool     { return a.Font.Traits.Has(TraitItalic) }
func (a Attributes) Underlined() bool { return a.Underline == UnderlineSingle }
