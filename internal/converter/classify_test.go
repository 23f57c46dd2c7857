package converter

import (
	"testing"

	"heic2jpg/internal/config"
)

func TestSplitExt(t *testing.T) {
	cases := []struct {
		name, base, ext string
	}{
		{"a.heic", "a", ".heic"},
		{"a.b.HEIC", "a.b", ".HEIC"},
		{".heic", ".heic", ""},
		{"..heic", "..heic", ""},
		{"noext", "noext", ""},
		{"trailing.", "trailing", "."},
	}
	for _, tc := range cases {
		base, ext := SplitExt(tc.name)
		if base != tc.base || ext != tc.ext {
			t.Fatalf("SplitExt(%q) = %q, %q; want %q, %q", tc.name, base, ext, tc.base, tc.ext)
		}
	}
}

func TestClassify(t *testing.T) {
	cfg := config.ForDir(t.TempDir())
	cases := map[string]Outcome{
		"a.heic":     OutcomeCandidate,
		"a.HEIC":     OutcomeCandidate,
		"a.Heic":     OutcomeIgnore,
		"a.hEIC":     OutcomeIgnore,
		"a.jpg":      OutcomeSkip,
		"a.JPG":      OutcomeSkip,
		"a.Jpeg":     OutcomeSkip,
		"a.PNG":      OutcomeSkip,
		"a.gif":      OutcomeIgnore,
		"notes.txt":  OutcomeIgnore,
		".heic":      OutcomeIgnore,
		"README":     OutcomeIgnore,
		"x.heic.jpg": OutcomeSkip,
		"x.jpg.heic": OutcomeCandidate,
	}
	for name, want := range cases {
		if got := Classify(name, cfg).Outcome; got != want {
			t.Fatalf("Classify(%q) = %s, want %s", name, got, want)
		}
	}
}
