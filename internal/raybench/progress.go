package raybench

import (
	"fmt"
	"io"
	"sync/atomic"
)

// progress prints "[PROGRESS] <phase> xx.xx%" lines roughly every 1% of total.
// tick is safe to call from several goroutines.
type progress struct {
	w         io.Writer
	phase     string
	total     int64
	nextPrint int64
	counter   int64
}

func newProgress(w io.Writer, phase string, total int) *progress {
	if w == nil {
		w = io.Discard
	}
	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = int64(total / 100) // ~1%
	}
	return &progress{w: w, phase: phase, total: int64(total), nextPrint: nextPrint}
}

func (p *progress) tick() {
	done := atomic.AddInt64(&p.counter, 1)
	if done%p.nextPrint == 0 {
		fmt.Fprintf(p.w, "[PROGRESS] %s %.2f%%\n", p.phase, float64(done)*100/float64(p.total))
	}
}
