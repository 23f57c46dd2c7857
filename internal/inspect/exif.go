package inspect

import (
	"io"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

type exifFacts struct {
	Make     string
	Model    string
	Captured string
}

func analyzeExif(rs io.ReadSeeker) (exifFacts, error) {
	facts := exifFacts{}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return facts, err
	}

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(rs, nil, true)
	if err != nil {
		if errorsIsNoExif(err) {
			return facts, nil
		}
		return facts, err
	}

	var digitized, modified string
	for _, tag := range tags {
		value := strings.TrimSpace(strings.TrimRight(tag.FormattedFirst, "\x00"))
		if value == "" {
			continue
		}
		switch tag.TagName {
		case "Make":
			facts.Make = value
		case "Model":
			facts.Model = value
		case "DateTimeOriginal":
			facts.Captured = value
		case "DateTimeDigitized":
			digitized = value
		case "DateTime":
			modified = value
		}
	}

	if facts.Captured == "" {
		facts.Captured = digitized
	}
	if facts.Captured == "" {
		facts.Captured = modified
	}
	facts.Captured = replaceFirstN(facts.Captured, ":", "-", 2)

	return facts, nil
}

func errorsIsNoExif(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "no exif")
}

// deviceName joins make and model, dropping the make when the model already
// starts with it ("Apple" + "iPhone 13" vs "Canon" + "Canon EOS R5").
func deviceName(facts exifFacts) string {
	if facts.Make != "" && strings.HasPrefix(strings.ToLower(facts.Model), strings.ToLower(facts.Make)) {
		return facts.Model
	}
	return strings.TrimSpace(facts.Make + " " + facts.Model)
}

func inferDeviceType(device string) string {
	device = strings.ToLower(device)
	switch {
	case strings.Contains(device, "iphone"),
		strings.Contains(device, "pixel"),
		strings.Contains(device, "galaxy"),
		strings.Contains(device, "android"):
		return "smartphone"
	case strings.Contains(device, "ipad"),
		strings.Contains(device, "tablet"):
		return "tablet"
	case strings.Contains(device, "gopro"):
		return "action camera"
	case strings.Contains(device, "dji"):
		return "drone"
	case strings.Contains(device, "canon"),
		strings.Contains(device, "nikon"),
		strings.Contains(device, "sony"),
		strings.Contains(device, "fujifilm"),
		strings.Contains(device, "panasonic"),
		strings.Contains(device, "olympus"),
		strings.Contains(device, "leica"):
		return "camera"
	default:
		return ""
	}
}

// replaceFirstN turns an EXIF "2024:01:02 03:04:05" into "2024-01-02 03:04:05".
func replaceFirstN(s, old, new string, n int) string {
	if n <= 0 || old == "" {
		return s
	}
	out := s
	for i := 0; i < n; i++ {
		idx := strings.Index(out, old)
		if idx < 0 {
			break
		}
		out = out[:idx] + new + out[idx+len(old):]
	}
	return out
}
