// Package benchmark exercises gosort purely through its public entry point:
// it generates random integer inputs, times every configured algorithm
// against the reference sort, and reports averages and any output mismatch.
package benchmark

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/wfusion/gosort/common/utils"
	"github.com/wfusion/gosort/sort"
)

type conf struct {
	sizes       []int
	rounds      int
	algorithms  []sort.Algorithm
	seed        int64
	simpleQuick bool
}

// Sizes sets the input lengths to benchmark.
func Sizes(sizes ...int) utils.OptionExtender {
	return utils.OptionFunc[conf](func(c *conf) {
		c.sizes = sizes
	})
}

// Rounds sets how many runs are averaged per algorithm and size.
func Rounds(n int) utils.OptionExtender {
	return utils.OptionFunc[conf](func(c *conf) {
		c.rounds = n
	})
}

// Algorithms restricts the run to the given selectors.
func Algorithms(algos ...sort.Algorithm) utils.OptionExtender {
	return utils.OptionFunc[conf](func(c *conf) {
		c.algorithms = algos
	})
}

// Seed fixes the random source so runs are reproducible.
func Seed(seed int64) utils.OptionExtender {
	return utils.OptionFunc[conf](func(c *conf) {
		c.seed = seed
	})
}

// SimpleQuickSort benchmarks the allocating quicksort variant instead of the
// in-place one.
func SimpleQuickSort() utils.OptionExtender {
	return utils.OptionFunc[conf](func(c *conf) {
		c.simpleQuick = true
	})
}

// Result aggregates one algorithm at one input size.
type Result struct {
	Algorithm        sort.Algorithm
	Size             int
	Rounds           int
	Average          time.Duration
	ReferenceAverage time.Duration
	Mismatches       int
}

// Runner drives one benchmark configuration.
type Runner struct {
	logger *zap.Logger
	conf   *conf
}

// New builds a Runner. Defaults: sizes 1000 and 10000, 5 rounds, every
// algorithm, time-based seed, in-place quicksort.
func New(logger *zap.Logger, opts ...utils.OptionExtender) *Runner {
	c := utils.ApplyOptions[conf](opts...)
	if len(c.sizes) == 0 {
		c.sizes = []int{1000, 10000}
	}
	if c.rounds <= 0 {
		c.rounds = 5
	}
	if len(c.algorithms) == 0 {
		c.algorithms = sort.Algorithms()
	}
	if c.seed == 0 {
		c.seed = time.Now().UnixNano()
	}
	return &Runner{logger: logger, conf: c}
}

// Run executes the configured benchmark and returns one Result per
// algorithm and size. Mismatches against the reference sort are logged with
// a diff and counted rather than aborting the run.
func (r *Runner) Run() []Result {
	rnd := utils.NewRandom(r.conf.seed)
	r.logger.Info("benchmark starting",
		zap.Ints("sizes", r.conf.sizes),
		zap.Int("rounds", r.conf.rounds),
		zap.Int64("seed", r.conf.seed),
		zap.Bool("simple_quick", r.conf.simpleQuick))

	var sortOpts []utils.OptionExtender
	if r.conf.simpleQuick {
		sortOpts = append(sortOpts, sort.SimpleQuickSort())
	}

	results := make([]Result, 0, len(r.conf.sizes)*len(r.conf.algorithms))
	for _, size := range r.conf.sizes {
		for _, algo := range r.conf.algorithms {
			res := Result{Algorithm: algo, Size: size, Rounds: r.conf.rounds}
			var total, refTotal time.Duration
			for round := 0; round < r.conf.rounds; round++ {
				data := utils.RandomInts(rnd, size, 0)

				ref := slices.Clone(data)
				start := time.Now()
				slices.Sort(ref)
				refTotal += time.Since(start)

				in := slices.Clone(data)
				start = time.Now()
				got := sort.SortOrdered(algo, in, sortOpts...)
				total += time.Since(start)

				if diff := cmp.Diff(ref, got); diff != "" {
					res.Mismatches++
					r.logger.Error("sorted output mismatch",
						zap.Stringer("algorithm", algo),
						zap.Int("size", size),
						zap.Int("round", round),
						zap.String("diff", diff))
				}
			}
			res.Average = total / time.Duration(r.conf.rounds)
			res.ReferenceAverage = refTotal / time.Duration(r.conf.rounds)
			results = append(results, res)

			r.logger.Info("benchmark case complete",
				zap.Stringer("algorithm", algo),
				zap.String("elements", humanize.Comma(int64(size))),
				zap.Duration("average", res.Average),
				zap.Duration("reference_average", res.ReferenceAverage),
				zap.Int("mismatches", res.Mismatches))
		}
	}
	return results
}
