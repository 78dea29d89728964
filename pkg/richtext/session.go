package richtext

import (
	"image"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/jotter/pkg/core"
)

const (
	DefaultBaseSize     = 18
	DefaultEnlargedSize = 24
	DefaultFamily       = "system"
	DefaultImageWidth   = 200
	DefaultImageHeight  = 200
)

// Range is a selection in buffer positions.
type Range struct {
	Start  int
	Length int
}

// End returns the position just past the range.
func (r Range) End() int {
	return r.Start + r.Length
}

// Session is the editing state of one open note: formatting toggles, the
// selection, the pending typing attributes and the attributed buffer.
// It is discarded on save or cancel and is not safe for concurrent use.
type Session struct {
	note   core.Note
	buf    *Buffer
	logger *slog.Logger

	bold      bool
	italic    bool
	underline bool
	size      float64

	baseSize     float64
	enlargedSize float64
	family       string
	boxW, boxH   int

	sel    Range
	typing *Attributes
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithBaseSize sets the regular font size.
func WithBaseSize(size float64) SessionOption {
	return func(s *Session) {
		if size > 0 {
			s.baseSize = size
		}
	}
}

// WithEnlargedSize sets the font size used when the size toggle is on.
func WithEnlargedSize(size float64) SessionOption {
	return func(s *Session) {
		if size > 0 {
			s.enlargedSize = size
		}
	}
}

// WithFamily sets the font family of synthesized attributes.
func WithFamily(family string) SessionOption {
	return func(s *Session) {
		if family != "" {
			s.family = family
		}
	}
}

// WithImageBox sets the box inserted images are scaled to fit.
// A non-positive height constrains the width only.
func WithImageBox(width, height int) SessionOption {
	return func(s *Session) {
		if width > 0 {
			s.boxW, s.boxH = width, height
		}
	}
}

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New opens a session on a fresh, empty note.
func New(opts ...SessionOption) *Session {
	return Open(core.NewNote(""), opts...)
}

// Open starts a session seeded from note. Rich content that cannot be
// decoded, or that disagrees with the plain text, falls back to the plain
// text with base attributes.
func Open(note core.Note, opts ...SessionOption) *Session {
	s := &Session{
		note:         note,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseSize:     DefaultBaseSize,
		enlargedSize: DefaultEnlargedSize,
		family:       DefaultFamily,
		boxW:         DefaultImageWidth,
		boxH:         DefaultImageHeight,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.size = s.baseSize

	if len(note.RichContent) > 0 {
		buf, err := Decode(note.RichContent)
		switch {
		case err != nil:
			s.logger.Warn("rich content unreadable, using plain text", "id", note.ID, "error", err)
		case buf.PlainText() != note.Text:
			s.logger.Warn("rich content out of sync, using plain text", "id", note.ID)
		default:
			s.buf = buf
		}
	}
	if s.buf == nil {
		s.buf = NewBuffer(Run{Text: note.Text, Attrs: s.toggleAttributes()})
	}
	s.sel = Range{Start: s.buf.Len()}
	return s
}

// Buffer returns the attributed content being edited.
func (s *Session) Buffer() *Buffer { return s.buf }

// Note returns the note the session was opened with.
func (s *Session) Note() core.Note { return s.note }

func (s *Session) Bold() bool        { return s.bold }
func (s *Session) Italic() bool      { return s.italic }
func (s *Session) Underline() bool   { return s.underline }
func (s *Session) FontSize() float64 { return s.size }
func (s *Session) Selection() Range  { return s.sel }

// TypingAttributes returns the attributes the next typed text will carry.
func (s *Session) TypingAttributes() Attributes {
	if s.typing != nil {
		return *s.typing
	}
	return s.toggleAttributes()
}

// Select sets the selection, clamped to the buffer. A collapsed selection
// picks up the attributes of the text just before it as typing attributes.
func (s *Session) Select(start, length int) {
	n := s.buf.Len()
	start = min(max(start, 0), n)
	length = min(max(length, 0), n-start)
	s.sel = Range{Start: start, Length: length}

	if length == 0 && start > 0 {
		if attrs, ok := s.buf.AttributesAt(start - 1); ok {
			s.typing = &attrs
		}
	}
}

// Insert types text at the cursor, replacing a non-empty selection.
func (s *Session) Insert(text string) error {
	attrs := s.TypingAttributes()
	if s.sel.Length > 0 {
		if err := s.buf.Delete(s.sel.Start, s.sel.End()); err != nil {
			return err
		}
	}
	if err := s.buf.Insert(s.sel.Start, text, attrs); err != nil {
		return err
	}
	s.sel = Range{Start: s.sel.Start + utf8.RuneCountInString(text)}
	return nil
}

// ToggleBold flips bold and reapplies the formatting state.
func (s *Session) ToggleBold() {
	s.bold = !s.bold
	s.applyFormatting()
}

// ToggleItalic flips italic and reapplies the formatting state.
func (s *Session) ToggleItalic() {
	s.italic = !s.italic
	s.applyFormatting()
}

// ToggleUnderline flips underline and reapplies the formatting state.
func (s *Session) ToggleUnderline() {
	s.underline = !s.underline
	s.applyFormatting()
}

// ToggleSize switches between the base and the enlarged font size.
func (s *Session) ToggleSize() {
	if s.size == s.enlargedSize {
		s.size = s.baseSize
	} else {
		s.size = s.enlargedSize
	}
	s.applyFormatting()
}

// applyFormatting recomputes the attribute set from the font in effect at
// the selection start (or the typing attributes), applies it to a non-empty
// selection, and always makes it the new typing attributes.
func (s *Session) applyFormatting() {
	ref, ok := s.referenceAttributes()
	if !ok {
		ref = s.toggleAttributes()
	}

	font := ref.Font.With(TraitBold, s.bold).With(TraitItalic, s.italic)
	font.Size = s.size
	attrs := Attributes{Font: font, Underline: s.underlineStyle()}

	if s.sel.Length > 0 {
		if err := s.buf.SetAttributes(s.sel.Start, s.sel.End(), attrs); err != nil {
			s.logger.Error("failed to apply formatting", "selection", s.sel, "error", err)
		}
	}
	s.typing = &attrs
}

func (s *Session) referenceAttributes() (Attributes, bool) {
	if s.sel.Length > 0 {
		if attrs, ok := s.buf.AttributesAt(s.sel.Start); ok {
			return attrs, true
		}
	}
	if s.typing != nil {
		return *s.typing, true
	}
	return Attributes{}, false
}

// toggleAttributes synthesizes an attribute set from the toggles alone.
func (s *Session) toggleAttributes() Attributes {
	font := Font{Family: s.family, Size: s.size}.
		With(TraitBold, s.bold).
		With(TraitItalic, s.italic)
	return Attributes{Font: font, Underline: s.underlineStyle()}
}

func (s *Session) underlineStyle() UnderlineStyle {
	if s.underline {
		return UnderlineSingle
	}
	return UnderlineNone
}

// InsertImage scales img to the image box and appends it to the end of the
// buffer on its own line. A nil image (picker cancelled) is a no-op.
// Typing attributes are reset from the toggles afterwards.
func (s *Session) InsertImage(img image.Image) error {
	if img == nil {
		return nil
	}
	att, err := NewImage(ScaleImage(img, s.boxW, s.boxH))
	if err != nil {
		return err
	}

	attrs := s.toggleAttributes()
	s.buf.AppendText("\n", attrs)
	s.buf.AppendImage(att)
	s.buf.AppendText("\n", attrs)

	s.typing = &attrs
	s.sel = Range{Start: s.buf.Len()}
	s.logger.Debug("image inserted", "id", s.note.ID, "width", att.Width, "height", att.Height)
	return nil
}

// CanSave reports whether the buffer holds any non-whitespace text.
func (s *Session) CanSave() bool {
	return strings.TrimSpace(s.buf.PlainText()) != ""
}

// Save returns the note with its plain text and rich content derived from
// the buffer. It fails with core.ErrEmptyNote when CanSave is false.
func (s *Session) Save() (core.Note, error) {
	if !s.CanSave() {
		return core.Note{}, core.ErrEmptyNote
	}
	rich, err := Encode(s.buf)
	if err != nil {
		return core.Note{}, err
	}
	note := s.note
	note.Text = s.buf.PlainText()
	note.RichContent = rich
	return note, nil
}
