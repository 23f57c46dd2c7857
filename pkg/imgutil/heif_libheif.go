//go:build libheif

package imgutil

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/strukturag/libheif/go/heif"
)

// HEIFBackend names the decoder compiled into this binary.
const HEIFBackend = "libheif (cgo)"

func primaryHandle(data []byte) (*heif.ImageHandle, error) {
	ctx, err := heif.NewContext()
	if err != nil {
		return nil, fmt.Errorf("can't create context: %w", err)
	}
	if err := ctx.ReadFromMemory(data); err != nil {
		return nil, fmt.Errorf("can't read from memory: %w", err)
	}

	handle, err := ctx.GetPrimaryImageHandle()
	if err != nil {
		return nil, fmt.Errorf("can't read primary image: %w", err)
	}
	return handle, nil
}

func decodeHEIF(data []byte) (image.Image, error) {
	handle, err := primaryHandle(data)
	if err != nil {
		return nil, err
	}

	heifImg, err := handle.DecodeImage(heif.ColorspaceUndefined, heif.ChromaUndefined, nil)
	if err != nil {
		return nil, fmt.Errorf("can't decode image: %w", err)
	}

	img, err := heifImg.GetImage()
	if err != nil {
		return nil, fmt.Errorf("can't convert image: %w", err)
	}
	return img, nil
}

func decodeHEIFConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}

	handle, err := primaryHandle(data)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.YCbCrModel,
		Width:      handle.GetWidth(),
		Height:     handle.GetHeight(),
	}, nil
}
