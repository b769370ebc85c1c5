package solve

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/raklib/rackserve/pkg/rack"
)

// pool is the fixed set of workers evaluating word blocks against the
// rack. Matches are pushed onto the shared result channel; block order
// and word order carry no completion guarantee.
type pool struct {
	rk      *rack.Rack
	tasks   chan []string
	results chan<- string
	ctx     context.Context
	log     *log.Logger

	wg        sync.WaitGroup
	evaluated atomic.Uint64
	errCount  atomic.Uint64
}

// newPool starts a fixed set of worker goroutines reading blocks from
// the task queue.
// Workers exit when the queue is closed or ctx is cancelled. Results
// already pushed onto the channel before a cancellation are retained.
func newPool(ctx context.Context, rk *rack.Rack, workers int, results chan<- string, logger *log.Logger) *pool {
	p := &pool{
		rk:      rk,
		tasks:   make(chan []string, workers*2),
		results: results,
		ctx:     ctx,
		log:     logger,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// submit queues a block without waiting for its evaluation. On
// cancellation the block is dropped.
func (p *pool) submit(block []string) {
	select {
	case p.tasks <- block:
	case <-p.ctx.Done():
	}
}

// close marks the task queue complete; call exactly once, after the last
// submit.
func (p *pool) close() { close(p.tasks) }

// wait blocks until every worker has exited, then closes the result
// channel so the collector can drain to completion. After wait returns,
// every submitted word has either been evaluated or dropped by a
// cancellation.
func (p *pool) wait() {
	p.wg.Wait()
	close(p.results)
}

func (p *pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case block, ok := <-p.tasks:
			if !ok {
				return
			}
			for _, word := range block {
				if p.ctx.Err() != nil {
					return
				}
				if p.eval(word) {
					select {
					case p.results <- word:
					case <-p.ctx.Done():
						return
					}
				}
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// eval runs the matcher for a single word. A panic is contained here so
// one bad word never takes down the worker or the pool; it is counted
// and logged, and the word is skipped.
func (p *pool) eval(word string) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			p.errCount.Add(1)
			p.log.Error("word evaluation failed", "word", word, "panic", r)
		}
	}()
	p.evaluated.Add(1)
	return p.rk.Fits(word)
}
