package raybench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

var (
	ErrNoRuns       = errors.New("no timed runs")
	ErrZeroDuration = errors.New("parallel mean duration is zero")
)

// Bench runs the sequential vs parallel benchmark.
type Bench struct {
	Warmup    int  // untimed sequential passes before measuring
	Runs      int  // timed passes per strategy
	Reconcile bool // write parallel rows back into the image

	// Now reads the clock; tests substitute a fake one. Defaults to time.Now.
	Now func() time.Time
	// Progress receives [PROGRESS] lines; nil discards them.
	Progress io.Writer
}

// NewBench returns a Bench with the default pass counts.
func NewBench() *Bench {
	return &Bench{Warmup: WarmupPasses, Runs: BenchRuns, Now: time.Now}
}

func (b *Bench) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}
	return b.Now()
}

// Run executes warm-up, the sequential passes and the parallel passes over img
// and returns the collected timings. The context is checked between passes.
func (b *Bench) Run(ctx context.Context, cam Camera, img *Pixels) (*Report, error) {
	if b.Runs < 1 {
		return nil, fmt.Errorf("bench: runs must be >= 1, got %d: %w", b.Runs, ErrNoRuns)
	}

	DebugLog("Performing warmup: %d passes", b.Warmup)
	p := newProgress(b.Progress, "warmup", b.Warmup)
	for i := 0; i < b.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		renderSequential(cam, img)
		p.tick()
	}

	rep := &Report{
		Sequential: make([]time.Duration, 0, b.Runs),
		Parallel:   make([]time.Duration, 0, b.Runs),
	}

	DebugLog("Collecting times for sequential: %d passes", b.Runs)
	p = newProgress(b.Progress, "sequential", b.Runs)
	for i := 0; i < b.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := b.now()
		renderSequential(cam, img)
		rep.Sequential = append(rep.Sequential, b.now().Sub(start))
		p.tick()
	}

	DebugLog("Collecting times for parallel: %d passes, reconcile=%v", b.Runs, b.Reconcile)
	DebugLogOnce("Row tasks per parallel pass: %d", img.Height())
	p = newProgress(b.Progress, "parallel", b.Runs)
	for i := 0; i < b.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := b.now()
		if err := renderParallel(ctx, cam, img, b.Reconcile); err != nil {
			return nil, fmt.Errorf("parallel pass %d: %w", i, err)
		}
		rep.Parallel = append(rep.Parallel, b.now().Sub(start))
		p.tick()
	}
	return rep, nil
}
