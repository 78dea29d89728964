package richtext

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/image/draw"
)

// Image is an embedded attachment. Pixels are kept PNG-encoded so the
// encoding round-trips losslessly.
type Image struct {
	Width  int
	Height int
	PNG    []byte
	Digest [32]byte
}

// NewImage encodes img as PNG and records its dimensions and digest.
func NewImage(img image.Image) (*Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		PNG:    buf.Bytes(),
		Digest: blake3.Sum256(buf.Bytes()),
	}, nil
}

// imageFromPNG rebuilds an Image from stored PNG bytes.
func imageFromPNG(data []byte) (*Image, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Image{
		Width:  cfg.Width,
		Height: cfg.Height,
		PNG:    data,
		Digest: blake3.Sum256(data),
	}, nil
}

// Decode returns the pixels of the attachment.
func (i *Image) Decode() (image.Image, error) {
	return png.Decode(bytes.NewReader(i.PNG))
}

// DigestHex returns the hex form of the BLAKE3 digest.
func (i *Image) DigestHex() string {
	return hex.EncodeToString(i.Digest[:])
}

// Equal compares dimensions and content digest.
func (i *Image) Equal(other *Image) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Width == other.Width && i.Height == other.Height && i.Digest == other.Digest
}

// FitSize scales (w, h) preserving aspect ratio so the result fits inside
// the (boxW, boxH) box. A non-positive boxH constrains the width only.
func FitSize(w, h, boxW, boxH int) (int, int) {
	if w <= 0 || h <= 0 || boxW <= 0 {
		return w, h
	}
	ratio := float64(boxW) / float64(w)
	if boxH > 0 {
		ratio = math.Min(ratio, float64(boxH)/float64(h))
	}
	nw := int(math.Round(float64(w) * ratio))
	nh := int(math.Round(float64(h) * ratio))
	return max(nw, 1), max(nh, 1)
}

// ScaleImage resamples src to fit the box, never cropping.
func ScaleImage(src image.Image, boxW, boxH int) image.Image {
	b := src.Bounds()
	nw, nh := FitSize(b.Dx(), b.Dy(), boxW, boxH)
	if nw == b.Dx() && nh == b.Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
