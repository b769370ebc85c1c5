/*
Package solve runs the concurrent search pipeline: a distributor
partitions the length-sorted word list into blocks, a fixed worker pool
evaluates each block against the rack, a collector drains matches into a
live-sorted collection, and background reporters surface progress and the
current longest words while the search is still running.

Completion is explicit rather than heuristic: the distributor closes the
pool's task queue after the last block, the pool drains its workers and
closes the result channel, and the collector returns when that channel
closes. Every submitted word is accounted for before the solver declares
itself done, so small or empty dictionaries terminate like any other run.
*/
package solve

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/raklib/rackserve/internal/logger"
	"github.com/raklib/rackserve/pkg/dictionary"
	"github.com/raklib/rackserve/pkg/rack"
)

// State is the solver lifecycle phase.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateCompleting
	StateDone
	StateInterrupted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleting:
		return "completing"
	case StateDone:
		return "done"
	case StateInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Params tunes the pipeline. Zero values fall back to defaults.
type Params struct {
	// BlockSize is the number of words per submitted work block.
	BlockSize int
	// Workers is the pool size; 0 means runtime.NumCPU().
	Workers int
	// TopK is how many of the longest matches the live reporter tracks.
	TopK int
	// PollInterval is the top-k reporter's sampling interval.
	PollInterval time.Duration
}

const (
	defaultBlockSize    = 1000
	defaultTopK         = 10
	defaultPollInterval = 10 * time.Millisecond
)

func (p *Params) normalize() {
	if p.BlockSize <= 0 {
		p.BlockSize = defaultBlockSize
	}
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	if p.TopK <= 0 {
		p.TopK = defaultTopK
	}
	if p.PollInterval <= 0 {
		p.PollInterval = defaultPollInterval
	}
}

// Result is what a finished (or interrupted) run produced.
type Result struct {
	// Words holds every collected match, longest first. Ties keep no
	// particular order.
	Words []string
	// Evaluated counts words actually run through the matcher.
	Evaluated int
	// EvalErrors counts words skipped after a recovered evaluation panic.
	EvalErrors uint64
	// State is the terminal state: StateDone or StateInterrupted.
	State State
}

// Solver wires the pipeline for one rack against one dictionary.
type Solver struct {
	rk     *rack.Rack
	dict   *dictionary.Dictionary
	params Params
	state  atomic.Int32

	log         *log.Logger
	topLog      *log.Logger
	progressLog *log.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the orchestrator's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithTopLogger sets the logger the top-k reporter writes to.
func WithTopLogger(l *log.Logger) Option {
	return func(s *Solver) { s.topLog = l }
}

// WithProgressLogger sets the logger progress samples are reported on.
func WithProgressLogger(l *log.Logger) Option {
	return func(s *Solver) { s.progressLog = l }
}

// New builds a Solver. Params are normalized; loggers default to
// prefixed stdout loggers unless overridden by options.
func New(rk *rack.Rack, dict *dictionary.Dictionary, params Params, opts ...Option) *Solver {
	params.normalize()
	s := &Solver{
		rk:     rk,
		dict:   dict,
		params: params,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Default("solver")
	}
	if s.topLog == nil {
		s.topLog = logger.Default("top words")
	}
	if s.progressLog == nil {
		s.progressLog = logger.Default("progress")
	}
	s.state.Store(int32(StateIdle))
	return s
}

// State returns the current lifecycle phase; safe to call concurrently
// with Run.
func (s *Solver) State() State {
	return State(s.state.Load())
}

// Run executes the search until every word is evaluated or ctx is
// cancelled. Interruption is not an error: the result then carries
// whatever was collected up to that point, with State set to
// StateInterrupted.
func (s *Solver) Run(ctx context.Context) *Result {
	words := s.dict.Words()
	s.state.Store(int32(StateRunning))

	results := make(chan string, 256)
	progress := make(chan float64, 64)
	best := NewSorted(func(w string) int { return utf8.RuneCountInString(w) })

	p := newPool(ctx, s.rk, s.params.Workers, results, s.log)

	var collectorWG sync.WaitGroup
	collectorWG.Add(1)
	go func() {
		defer collectorWG.Done()
		collect(results, best)
	}()

	var reporterWG sync.WaitGroup
	reporterWG.Add(1)
	go func() {
		defer reporterWG.Done()
		reportProgress(progress, s.progressLog)
	}()

	topCtx, stopTop := context.WithCancel(context.Background())
	top := newTopReporter(best, s.params.TopK, s.params.PollInterval, s.topLog)
	reporterWG.Add(1)
	go func() {
		defer reporterWG.Done()
		top.run(topCtx)
	}()

	distribute(ctx, words, s.params.BlockSize, progress, p)
	close(progress)

	s.state.Store(int32(StateCompleting))
	p.close()
	p.wait()
	collectorWG.Wait()

	stopTop()
	reporterWG.Wait()

	final := StateDone
	if ctx.Err() != nil {
		final = StateInterrupted
		s.log.Warn("search interrupted, reporting partial results")
	}
	s.state.Store(int32(final))

	return &Result{
		Words:      best.Descending(),
		Evaluated:  int(p.evaluated.Load()),
		EvalErrors: p.errCount.Load(),
		State:      final,
	}
}
