package converter

import "errors"

// ErrConversionFailed is returned by Run when at least one candidate could
// not be converted. The per-file details have already been reported.
var ErrConversionFailed = errors.New("conversion failed")

type Outcome int

const (
	OutcomeIgnore Outcome = iota
	OutcomeSkip
	OutcomeCandidate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkip:
		return "skip"
	case OutcomeCandidate:
		return "convert"
	default:
		return "ignore"
	}
}

// Entry is a directory listing name split into base and extension.
type Entry struct {
	Name    string
	Base    string
	Ext     string
	Outcome Outcome
}

type FileError struct {
	Name string
	Err  error
}

type Summary struct {
	Converted int
	Skipped   int
	Errors    []FileError
}

func (s Summary) Failed() bool {
	return len(s.Errors) > 0
}
