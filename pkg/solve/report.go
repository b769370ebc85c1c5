package solve

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// collect drains the result channel into the ordered collection. It is
// the collection's only writer and runs until the pool closes the
// channel, which happens once every submitted word is accounted for.
func collect(results <-chan string, best *Sorted[string]) {
	for word := range results {
		best.Insert(word)
	}
}

// reportProgress logs every sample in arrival order, no deduplication,
// until the distributor closes the channel.
func reportProgress(progress <-chan float64, logger *log.Logger) {
	for pct := range progress {
		logger.Infof("%.2f%% complete", pct)
	}
}

// topReporter periodically samples the tail of the collection and logs
// the current longest words, but only when the set actually changed.
type topReporter struct {
	best     *Sorted[string]
	k        int
	interval time.Duration
	log      *log.Logger

	last map[string]struct{}
}

func newTopReporter(best *Sorted[string], k int, interval time.Duration, logger *log.Logger) *topReporter {
	return &topReporter{
		best:     best,
		k:        k,
		interval: interval,
		log:      logger,
		last:     make(map[string]struct{}),
	}
}

// run polls on a fixed interval until ctx is cancelled. A final poll on
// the way out catches matches that landed after the last tick.
func (r *topReporter) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.poll()
			return
		case <-ticker.C:
			r.poll()
		}
	}
}

// poll reports the current top words when membership changed since the
// last report. Comparison is by set membership, not order, so a reshuffle
// among the same k words is not re-reported.
func (r *topReporter) poll() {
	if r.best.Len() == 0 {
		return
	}

	tail := r.best.Tail(r.k)
	candidate := make([]string, len(tail))
	for i, w := range tail {
		candidate[len(tail)-1-i] = w
	}

	if !r.changed(candidate) {
		return
	}

	r.last = make(map[string]struct{}, len(candidate))
	for _, w := range candidate {
		r.last[w] = struct{}{}
	}
	r.log.Infof("#1-%d of %d: %s", len(candidate), r.best.Len(), strings.Join(candidate, ", "))
}

func (r *topReporter) changed(candidate []string) bool {
	for _, w := range candidate {
		if _, ok := r.last[w]; !ok {
			return true
		}
	}
	return false
}
