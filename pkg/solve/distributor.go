package solve

import "context"

// distribute partitions the length-sorted word list into fixed-size
// blocks and submits each one to the pool. One progress sample goes out
// per block, measured at the block's start index, so emitted percentages
// are non-decreasing and stay in [0, 100).
//
// Submission does not wait for a block's matches to be computed; after
// the last block is queued the distributor is done. Cancellation stops
// the loop between blocks.
func distribute(ctx context.Context, words []string, blockSize int, progress chan<- float64, p *pool) {
	total := len(words)
	for start := 0; start < total; start += blockSize {
		if ctx.Err() != nil {
			return
		}

		end := min(start+blockSize, total)

		select {
		case progress <- float64(start) / float64(total) * 100:
		case <-ctx.Done():
			return
		}
		p.submit(words[start:end])
	}
}
