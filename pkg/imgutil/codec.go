package imgutil

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Codec decodes image bytes into pixels and encodes pixels into the target
// format.
type Codec interface {
	Decode(r io.Reader) (image.Image, error)
	Encode(w io.Writer, img image.Image, quality int) error
}

// DefaultCodec decodes by content, not by file name: HEIF goes to the HEIF
// backend, everything else to the image.Decode registry. It encodes JPEG.
type DefaultCodec struct{}

func (DefaultCodec) Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}

	kind, err := DetectHeader(data[:min(len(data), HeaderSize)])
	if err != nil {
		return nil, err
	}
	if kind == KindHEIC {
		img, err := decodeHEIF(data)
		if err != nil {
			return nil, fmt.Errorf("decode heif: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (DefaultCodec) Encode(w io.Writer, img image.Image, quality int) error {
	return EncodeJPEG(w, img, quality)
}

// EncodeJPEG writes img as a baseline JPEG at the given quality (1-100).
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

// DecodeConfig reports dimensions and container kind without decoding pixels.
func DecodeConfig(r io.Reader) (image.Config, Kind, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(HeaderSize)
	if err != nil && len(header) == 0 {
		return image.Config{}, KindUnknown, err
	}

	kind, err := DetectHeader(header)
	if err != nil {
		return image.Config{}, KindUnknown, err
	}

	var cfg image.Config
	if kind == KindHEIC {
		cfg, err = decodeHEIFConfig(br)
	} else {
		cfg, _, err = image.DecodeConfig(br)
	}
	return cfg, kind, err
}

// Flatten returns an opaque three-channel version of img when it is
// palette-indexed or carries alpha. Alpha is dropped, not composited:
// straight color values are kept. Other images are returned as is.
func Flatten(img image.Image) image.Image {
	if n, ok := img.(*image.NYCbCrA); ok {
		return &n.YCbCr
	}
	if !hasAlphaOrPalette(img) {
		return img
	}

	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

func hasAlphaOrPalette(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}

	model := img.ColorModel()
	if _, ok := model.(color.Palette); ok {
		return true
	}
	// Every image type in the standard library and x/image reports Opaque.
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	switch model {
	case color.NRGBAModel, color.NRGBA64Model,
		color.RGBAModel, color.RGBA64Model,
		color.NYCbCrAModel,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
