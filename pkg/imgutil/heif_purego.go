//go:build !libheif

package imgutil

import (
	"bytes"
	"image"
	"io"

	"github.com/gen2brain/heic"
)

// HEIFBackend names the decoder compiled into this binary.
const HEIFBackend = "libheif (wasm)"

func decodeHEIF(data []byte) (image.Image, error) {
	return heic.Decode(bytes.NewReader(data))
}

func decodeHEIFConfig(r io.Reader) (image.Config, error) {
	return heic.DecodeConfig(r)
}
