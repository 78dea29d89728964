// Package export renders attributed buffers for consumption outside the
// editor: Markdown for plain files and HTML for previews.
package export

import (
	"strings"
	"unicode"

	"github.com/aretw0/jotter/pkg/richtext"
)

// ImageScheme prefixes the digest of an attachment in its link target.
const ImageScheme = "blake3:"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`~`, `\~`,
	`|`, `\|`,
	`!`, `\!`,
)

// Markdown renders the buffer. Bold becomes **, italic _, underline
// <u></u>; font size is dropped. Attachments become image links on their
// BLAKE3 digest.
func Markdown(buf *richtext.Buffer) string {
	var sb strings.Builder
	for _, run := range buf.Runs() {
		if run.IsAttachment() {
			sb.WriteString("![image](")
			sb.WriteString(ImageScheme)
			sb.WriteString(run.Image.DigestHex())
			sb.WriteString(")")
			continue
		}
		// Emphasis cannot span a line break.
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			writeSpan(&sb, line, run.Attrs)
		}
	}
	return sb.String()
}

func writeSpan(sb *strings.Builder, s string, attrs richtext.Attributes) {
	core := strings.TrimFunc(s, unicode.IsSpace)
	if core == "" {
		sb.WriteString(s)
		return
	}
	start := strings.Index(s, core)
	lead, trail := s[:start], s[start+len(core):]

	var open, closers []string
	if attrs.Underlined() {
		open, closers = append(open, "<u>"), append([]string{"</u>"}, closers...)
	}
	if attrs.Bold() {
		open, closers = append(open, "**"), append([]string{"**"}, closers...)
	}
	if attrs.Italic() {
		open, closers = append(open, "_"), append([]string{"_"}, closers...)
	}

	sb.WriteString(lead)
	sb.WriteString(strings.Join(open, ""))
	sb.WriteString(escaper.Replace(core))
	sb.WriteString(strings.Join(closers, ""))
	sb.WriteString(trail)
}
