package converter

import (
	"slices"
	"strings"

	"heic2jpg/internal/config"
)

// SplitExt splits name at its last dot. Leading dots belong to the base, so
// ".heic" has no extension while "a.b.heic" has ".heic".
func SplitExt(name string) (string, string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || strings.TrimLeft(name[:i], ".") == "" {
		return name, ""
	}
	return name[:i], name[i:]
}

// Classify decides what a run does with a directory entry. Source extensions
// are compared verbatim; skip extensions are compared lowercased.
func Classify(name string, cfg config.Config) Entry {
	base, ext := SplitExt(name)
	entry := Entry{Name: name, Base: base, Ext: ext}

	switch {
	case slices.Contains(cfg.SourceExts, ext):
		entry.Outcome = OutcomeCandidate
	case ext != "" && slices.Contains(cfg.SkipExts, strings.ToLower(ext)):
		entry.Outcome = OutcomeSkip
	default:
		entry.Outcome = OutcomeIgnore
	}
	return entry
}
