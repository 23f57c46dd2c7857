package inspect

import (
	"heic2jpg/internal/converter"
	"heic2jpg/pkg/imgutil"
)

type job struct {
	Index int
	Entry converter.Entry
	Path  string
}

type result struct {
	Index  int
	Report Report
}

// Report describes what a conversion run would do with one directory entry.
type Report struct {
	Name    string
	Outcome converter.Outcome
	Kind    imgutil.Kind
	Width   int
	Height  int

	Device     string
	DeviceType string
	Captured   string

	// Target is the file a conversion would write; TargetExists means it
	// would be overwritten.
	Target       string
	TargetExists bool

	// Err means the conversion would fail on this file. ExifErr only
	// affects the device and capture facts.
	Err     error
	ExifErr error
}

type Summary struct {
	Candidates int
	Skipped    int
	Ignored    int
	Errors       int
	ExifWarnings int
	Overwrites   int
}

// ProgressUpdate carries counter deltas for the scan progress view. Name is
// the file that was just inspected, if any.
type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ErrorDelta     int
	OverwriteDelta int
	Name           string
}
