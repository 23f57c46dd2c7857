package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"heic2jpg/internal/config"
	"heic2jpg/pkg/imgutil"
)

// Run converts every candidate in cfg.Dir, one file at a time, in the order
// os.ReadDir returns them (sorted by name). A failing file is recorded and
// reported; only a failure to list the directory stops the run.
func Run(cfg config.Config, codec imgutil.Codec, reporter Reporter) (Summary, error) {
	summary := Summary{}

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return summary, fmt.Errorf("list %s: %w", cfg.Dir, err)
	}

	for _, de := range entries {
		entry := Classify(de.Name(), cfg)

		switch entry.Outcome {
		case OutcomeSkip:
			summary.Skipped++
			reporter.Skipped(entry.Name)
		case OutcomeCandidate:
			dstName := entry.Base + cfg.TargetExt
			src := filepath.Join(cfg.Dir, entry.Name)
			dst := filepath.Join(cfg.Dir, dstName)

			if err := convertFile(src, dst, codec, cfg.Quality); err != nil {
				summary.Errors = append(summary.Errors, FileError{Name: entry.Name, Err: err})
				reporter.Failed(entry.Name, err)
				continue
			}
			summary.Converted++
			reporter.Converted(entry.Name, dstName)
		}
	}

	reporter.Done(summary)

	if summary.Failed() {
		return summary, fmt.Errorf("%w: %d file(s)", ErrConversionFailed, len(summary.Errors))
	}
	return summary, nil
}

// convertFile overwrites dst unconditionally. A failed encode can leave a
// partial dst behind.
func convertFile(src, dst string, codec imgutil.Codec, quality int) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	img, err := codec.Decode(in)
	_ = in.Close()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	img = imgutil.Flatten(img)

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := codec.Encode(out, img, quality); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return out.Close()
}
