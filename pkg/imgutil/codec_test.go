package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// red16.heic is a 16x16 4:2:0 HEVC still whose only coding unit is stored
// as PCM samples (Y=81, Cb=90, Cr=240), wrapped in a minimal HEIF container.
var heicFixture = filepath.Join("testdata", "red16.heic")

func TestFlattenDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 10})

	out := Flatten(src)
	got := color.NRGBAModel.Convert(out.At(0, 0)).(color.NRGBA)
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 0xff}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFlattenNYCbCrA(t *testing.T) {
	src := image.NewNYCbCrA(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	for i := range src.Y {
		src.Y[i], src.Cb[i], src.Cr[i], src.A[i] = 81, 90, 240, 10
	}

	out := Flatten(src)
	if _, ok := out.(*image.NYCbCrA); ok {
		t.Fatalf("expected alpha plane to be dropped")
	}
	r, g, b, a := out.At(1, 1).RGBA()
	wr, wg, wb, _ := color.YCbCr{Y: 81, Cb: 90, Cr: 240}.RGBA()
	if r != wr || g != wg || b != wb || a != 0xffff {
		t.Fatalf("got %#x,%#x,%#x,%#x want %#x,%#x,%#x,0xffff", r, g, b, a, wr, wg, wb)
	}
}

func TestFlattenKeepsOpaqueNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xff
	}
	if out := Flatten(src); out != image.Image(src) {
		t.Fatalf("expected opaque NRGBA to pass through")
	}
}

func TestFlattenPaletted(t *testing.T) {
	palette := color.Palette{color.RGBA{A: 0}, color.RGBA{G: 0xff, A: 0xff}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	src.SetColorIndex(1, 1, 1)

	out := Flatten(src)
	if _, ok := out.(*image.Paletted); ok {
		t.Fatalf("expected paletted image to be converted")
	}
	_, g, _, a := out.At(1, 1).RGBA()
	if g != 0xffff || a != 0xffff {
		t.Fatalf("unexpected pixel: g=%#x a=%#x", g, a)
	}
	_, _, _, a = out.At(0, 0).RGBA()
	if a != 0xffff {
		t.Fatalf("expected transparent index to become opaque, alpha %#x", a)
	}
}

func TestFlattenKeepsOpaqueModels(t *testing.T) {
	ycc := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)
	if out := Flatten(ycc); out != image.Image(ycc) {
		t.Fatalf("expected YCbCr image to pass through")
	}
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	if out := Flatten(gray); out != image.Image(gray) {
		t.Fatalf("expected gray image to pass through")
	}
}

func TestDefaultCodecDecodesByContent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := DefaultCodec{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestDefaultCodecRejectsGarbage(t *testing.T) {
	if _, err := (DefaultCodec{}).Decode(bytes.NewReader([]byte("not an image, just text"))); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := (DefaultCodec{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestDefaultCodecEncodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := (DefaultCodec{}).Encode(&buf, src, 90); err != nil {
		t.Fatalf("encode: %v", err)
	}
	kind, err := SniffReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if kind != KindJPEG {
		t.Fatalf("got %s, want jpeg", kind)
	}
}

func TestDecodeConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 5, 7))); err != nil {
		t.Fatalf("encode: %v", err)
	}

	cfg, kind, err := DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if kind != KindPNG || cfg.Width != 5 || cfg.Height != 7 {
		t.Fatalf("unexpected result: %s %dx%d", kind, cfg.Width, cfg.Height)
	}
}

func TestDefaultCodecDecodesHEIF(t *testing.T) {
	data, err := os.ReadFile(heicFixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	img, err := DefaultCodec{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
	assertReddish(t, img.At(8, 8))

	var buf bytes.Buffer
	if err := (DefaultCodec{}).Encode(&buf, Flatten(img), 90); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	assertReddish(t, out.At(3, 12))
}

func TestDecodeConfigHEIF(t *testing.T) {
	f, err := os.Open(heicFixture)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	cfg, kind, err := DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if kind != KindHEIC || cfg.Width != 16 || cfg.Height != 16 {
		t.Fatalf("unexpected result: %s %dx%d", kind, cfg.Width, cfg.Height)
	}
}

func TestSniffFileHEIF(t *testing.T) {
	kind, err := SniffFile(heicFixture)
	if err != nil {
		t.Fatalf("sniff: %v", err)
	}
	if kind != KindHEIC {
		t.Fatalf("got %s, want heic", kind)
	}
}

func assertReddish(t *testing.T, c color.Color) {
	t.Helper()
	r, g, b, _ := c.RGBA()
	if r>>8 < 0xc0 || g>>8 > 0x40 || b>>8 > 0x40 {
		t.Fatalf("expected a red pixel, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
