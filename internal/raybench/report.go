package raybench

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report holds one duration per timed pass for each strategy.
type Report struct {
	Sequential []time.Duration
	Parallel   []time.Duration
}

// meanDuration is the arithmetic mean, truncated to whole nanoseconds.
func meanDuration(ds []time.Duration) (time.Duration, error) {
	if len(ds) == 0 {
		return 0, ErrNoRuns
	}
	var sum time.Duration
	for _, d := range ds {
		sum += d
	}
	return sum / time.Duration(len(ds)), nil
}

func (r *Report) SequentialMean() (time.Duration, error) { return meanDuration(r.Sequential) }
func (r *Report) ParallelMean() (time.Duration, error)   { return meanDuration(r.Parallel) }

// Speedup is sequential mean / parallel mean.
func (r *Report) Speedup() (float64, error) {
	seq, err := r.SequentialMean()
	if err != nil {
		return 0, fmt.Errorf("sequential: %w", err)
	}
	par, err := r.ParallelMean()
	if err != nil {
		return 0, fmt.Errorf("parallel: %w", err)
	}
	if par == 0 {
		return 0, ErrZeroDuration
	}
	return float64(seq) / float64(par), nil
}

// Print writes the per-pass durations, both means and the speedup.
// Nothing is written when a mean or the speedup cannot be computed.
func (r *Report) Print(w io.Writer) error {
	seq, err := r.SequentialMean()
	if err != nil {
		return fmt.Errorf("sequential: %w", err)
	}
	par, err := r.ParallelMean()
	if err != nil {
		return fmt.Errorf("parallel: %w", err)
	}
	speedup, err := r.Speedup()
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	lines := []struct {
		format string
		arg    interface{}
	}{
		{"Sequential runs: %s\n", fmt.Sprint(r.Sequential)},
		{"Parallel runs: %s\n", fmt.Sprint(r.Parallel)},
		{"Sequential mean: %d ns\n", seq.Nanoseconds()},
		{"Parallel mean: %d ns\n", par.Nanoseconds()},
		{"Speedup: %.2f\n", speedup},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.arg); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
	}
	return nil
}
