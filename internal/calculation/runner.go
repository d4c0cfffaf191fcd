package calculation

import (
	"sync"
	"sync/atomic"

	"github.com/rgehrsitz/swrgo/internal/domain"
)

// Runner executes batches of independent trials at one withdrawal amount
type Runner struct {
	// Workers is the number of goroutines blocks of trials are spread over.
	// Values below 2 run everything on the caller's goroutine. The worker
	// count never changes the outcome.
	Workers int
	// Volatility overrides the risk tier table; nil uses DefaultVolatility.
	Volatility Volatility
}

// NewRunner creates a runner with the given worker count
func NewRunner(workers int) *Runner {
	return &Runner{Workers: workers}
}

// BlockSize is the number of consecutive trials that share one generator
const BlockSize = 64

// Run executes params.RunsPerIteration trials and reports the fraction that
// never ran out of money. Paths are returned in trial order.
//
// Trials are grouped into blocks of BlockSize. Every block gets a child
// generator seeded from src in block order before any trial starts, and
// workers pull whole blocks, so the outcome depends only on src.
func (r *Runner) Run(assets []domain.Asset, params domain.SimulationParameters, annualWithdrawal float64, src Source) domain.RunOutcome {
	runs := params.RunsPerIteration
	if runs <= 0 {
		return domain.RunOutcome{}
	}
	models := toAssetModels(assets, r.Volatility)
	paths := make([]domain.Path, runs)

	blocks := (runs + BlockSize - 1) / BlockSize
	sources := make([]Source, blocks)
	for b := range sources {
		sources[b] = childSource(src)
	}
	counts := make([]int, blocks)

	runBlock := func(b int) {
		start := b * BlockSize
		end := min(start+BlockSize, runs)
		counts[b] = runPartition(models, params, annualWithdrawal, NewBoxMuller(sources[b]), paths[start:end])
	}

	workers := min(r.Workers, blocks)
	if workers < 2 {
		for b := 0; b < blocks; b++ {
			runBlock(b)
		}
	} else {
		var next atomic.Int64
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					b := int(next.Add(1) - 1)
					if b >= blocks {
						return
					}
					runBlock(b)
				}
			}()
		}
		wg.Wait()
	}

	successes := 0
	for _, c := range counts {
		successes += c
	}

	return domain.RunOutcome{
		SuccessRate: float64(successes) / float64(runs),
		Paths:       paths,
	}
}

// runPartition fills out with one path per slot and returns the success count
func runPartition(models []assetModel, params domain.SimulationParameters, annualWithdrawal float64, nv *BoxMuller, out []domain.Path) int {
	values := make([]float64, len(models))
	successes := 0
	for i := range out {
		ok, path := simulatePath(models, values, params, annualWithdrawal, nv)
		if ok {
			successes++
		}
		out[i] = path
	}
	return successes
}
