package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"heic2jpg/internal/config"
	"heic2jpg/internal/converter"
	"heic2jpg/pkg/imgutil"
)

// Run lists cfg.Dir and classifies it exactly as a conversion run would,
// without writing anything. Candidates are opened by a worker pool to read
// their dimensions and EXIF facts. Reports come back in listing order.
func Run(ctx context.Context, cfg config.Config, updates chan<- ProgressUpdate) (Summary, []Report, error) {
	summary := Summary{}

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return summary, nil, fmt.Errorf("list %s: %w", cfg.Dir, err)
	}

	reports := make([]Report, len(entries))
	var candidates []job
	for i, de := range entries {
		entry := converter.Classify(de.Name(), cfg)
		reports[i] = Report{Name: entry.Name, Outcome: entry.Outcome}

		switch entry.Outcome {
		case converter.OutcomeSkip:
			summary.Skipped++
		case converter.OutcomeIgnore:
			summary.Ignored++
		case converter.OutcomeCandidate:
			summary.Candidates++
			candidates = append(candidates, job{
				Index: i,
				Entry: entry,
				Path:  filepath.Join(cfg.Dir, entry.Name),
			})
		}
	}

	jobs := make(chan job)
	results := make(chan result)

	workers := runtime.NumCPU()
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, cfg, jobs, results)
		}()
	}

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		for r := range results {
			res := r.Report
			reports[r.Index] = res
			if res.Err != nil {
				summary.Errors++
			}
			if res.ExifErr != nil {
				summary.ExifWarnings++
			}
			// A file that fails to decode never reaches the write.
			overwrites := res.TargetExists && res.Err == nil
			if overwrites {
				summary.Overwrites++
			}
			send(updates, ProgressUpdate{
				ProcessedDelta: 1,
				ErrorDelta:     boolToInt(res.Err != nil),
				OverwriteDelta: boolToInt(overwrites),
				Name:           res.Name,
			})
		}
	}()

	producerErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		for range candidates {
			send(updates, ProgressUpdate{TotalDelta: 1})
		}
		for _, c := range candidates {
			select {
			case jobs <- c:
			case <-ctx.Done():
				producerErr <- ctx.Err()
				return
			}
		}
		producerErr <- nil
	}()

	wg.Wait()
	close(results)
	<-collectorDone

	if err := <-producerErr; err != nil && !errors.Is(err, context.Canceled) {
		return summary, reports, err
	}

	return summary, reports, nil
}

var readExif = analyzeExif

func worker(ctx context.Context, cfg config.Config, jobs <-chan job, results chan<- result) {
	for j := range jobs {
		if err := ctx.Err(); err != nil {
			return
		}
		results <- result{Index: j.Index, Report: inspectFile(cfg, j)}
	}
}

func inspectFile(cfg config.Config, j job) Report {
	res := Report{
		Name:    j.Entry.Name,
		Outcome: j.Entry.Outcome,
		Target:  j.Entry.Base + cfg.TargetExt,
	}

	if _, err := os.Stat(filepath.Join(cfg.Dir, res.Target)); err == nil {
		res.TargetExists = true
	}

	file, err := os.Open(j.Path)
	if err != nil {
		res.Err = err
		return res
	}
	defer file.Close()

	imgCfg, kind, err := imgutil.DecodeConfig(file)
	res.Kind = kind
	if err != nil {
		res.Err = fmt.Errorf("decode: %w", err)
		return res
	}
	res.Width = imgCfg.Width
	res.Height = imgCfg.Height

	// The conversion does not read EXIF, so a broken EXIF block leaves the
	// file convertible.
	facts, err := readExif(file)
	if err != nil {
		res.ExifErr = err
		return res
	}
	res.Device = deviceName(facts)
	res.DeviceType = inferDeviceType(res.Device)
	res.Captured = facts.Captured

	return res
}

func send(updates chan<- ProgressUpdate, update ProgressUpdate) {
	if updates != nil {
		updates <- update
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
