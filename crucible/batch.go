package crucible

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/cruciblebio/crucible-go/types"
)

// BatchGenerate runs Generate for each (input, config) pair
// concurrently and returns one result per input, in input order.
//
// The gateway auto-batches on its side, so the batch path is plain
// fan-out of independent single-item calls over a worker pool bounded
// by the host's default concurrency. Any failure for item i — a
// transport failure, an unsupported input, or a panic — becomes a
// *types.ProteinError in slot i only; the remaining items are
// unaffected. BatchGenerate never returns a raised error.
func (c *Client) BatchGenerate(ctx context.Context, inputs []types.ProteinValue, configs []types.GenerationConfig) []types.ProteinValue {
	results := make([]types.ProteinValue, len(inputs))

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup

	for i := range inputs {
		if i >= len(configs) {
			results[i] = &types.ProteinError{Msg: fmt.Sprintf("no generation config for batch item %d", i)}
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					results[i] = &types.ProteinError{Msg: fmt.Sprintf("batch item %d: %v", i, r)}
				}
			}()

			results[i] = c.Generate(ctx, inputs[i], configs[i])
		}(i)
	}

	wg.Wait()
	return results
}
