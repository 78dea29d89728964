package richtext

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// magic prefixes every encoded buffer.
var magic = []byte("JTR1")

const wireVersion = 1

type wireImage struct {
	Width  int    `cbor:"1,keyasint"`
	Height int    `cbor:"2,keyasint"`
	PNG    []byte `cbor:"3,keyasint"`
}

type wireRun struct {
	Text      string     `cbor:"1,keyasint,omitempty"`
	Family    string     `cbor:"2,keyasint,omitempty"`
	Size      float64    `cbor:"3,keyasint,omitempty"`
	Traits    uint32     `cbor:"4,keyasint,omitempty"`
	Underline uint8      `cbor:"5,keyasint,omitempty"`
	Image     *wireImage `cbor:"6,keyasint,omitempty"`
}

type wireDoc struct {
	Version int       `cbor:"1,keyasint"`
	Runs    []wireRun `cbor:"2,keyasint"`
}

// encMode uses Core Deterministic Encoding so the same buffer always
// produces identical bytes.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode

	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("richtext: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("richtext: CBOR decoder initialization failed: " + err.Error())
	}
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("richtext: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(64<<20))
	if err != nil {
		panic("richtext: zstd decoder initialization failed: " + err.Error())
	}
}

// Encode serializes the buffer runs, in order, into an opaque blob.
func Encode(b *Buffer) ([]byte, error) {
	doc := wireDoc{Version: wireVersion, Runs: make([]wireRun, 0, len(b.runs))}
	for _, r := range b.runs {
		if r.IsAttachment() {
			doc.Runs = append(doc.Runs, wireRun{Image: &wireImage{
				Width:  r.Image.Width,
				Height: r.Image.Height,
				PNG:    r.Image.PNG,
			}})
			continue
		}
		doc.Runs = append(doc.Runs, wireRun{
			Text:      r.Text,
			Family:    r.Attrs.Font.Family,
			Size:      r.Attrs.Font.Size,
			Traits:    uint32(r.Attrs.Font.Traits),
			Underline: uint8(r.Attrs.Underline),
		})
	}

	raw, err := encMode.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rich content: %w", err)
	}
	return zstdEncoder.EncodeAll(raw, append([]byte(nil), magic...)), nil
}

// Decode parses a blob produced by Encode.
func Decode(data []byte) (*Buffer, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidRichContent)
	}
	raw, err := zstdDecoder.DecodeAll(data[len(magic):], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRichContent, err)
	}

	var doc wireDoc
	if err := decMode.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRichContent, err)
	}
	if doc.Version != wireVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidRichContent, doc.Version)
	}

	runs := make([]Run, 0, len(doc.Runs))
	for i, w := range doc.Runs {
		if w.Image != nil {
			img, err := imageFromPNG(w.Image.PNG)
			if err != nil {
				return nil, fmt.Errorf("%w: run %d: %v", ErrInvalidRichContent, i, err)
			}
			if img.Width != w.Image.Width || img.Height != w.Image.Height {
				return nil, fmt.Errorf("%w: run %d: image size mismatch", ErrInvalidRichContent, i)
			}
			runs = append(runs, Run{Image: img})
			continue
		}
		runs = append(runs, Run{
			Text: w.Text,
			Attrs: Attributes{
				Font: Font{
					Family: w.Family,
					Size:   w.Size,
					Traits: Traits(w.Traits),
				},
				Underline: UnderlineStyle(w.Underline),
			},
		})
	}
	return NewBuffer(runs...), nil
}
