package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wfusion/gosort/benchmark"
	"github.com/wfusion/gosort/common/utils"
	"github.com/wfusion/gosort/sort"
)

const ver = "v0.1.0"

var flags struct {
	sizes       string
	rounds      int
	algos       []string
	seed        int64
	simpleQuick bool
	verbose     bool
}

func main() {
	if err := command().ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
	}
}

func command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortbench",
		Short: fmt.Sprintf("gosort benchmark harness (%s)", ver),
		Long: fmt.Sprintf(`gosort benchmark harness (%s)

Generates random integer sequences, sorts them with each selected gosort
algorithm and with the reference sort, then reports average timings and any
output mismatch.
`, ver),
		Example:       "  sortbench --sizes 1000,100000 --rounds 10 --algos merge,heap",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	bindFlags(rootCmd.Flags())
	return rootCmd
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&flags.sizes, "sizes", "s", "1000,10000", "comma separated input sizes")
	fs.IntVarP(&flags.rounds, "rounds", "r", 5, "rounds averaged per algorithm and size")
	fs.StringSliceVarP(&flags.algos, "algos", "a", nil, "algorithms to run (default all)")
	fs.Int64Var(&flags.seed, "seed", 0, "random seed, 0 means time based")
	fs.BoolVar(&flags.simpleQuick, "simple-quick", false, "use the allocating quicksort variant")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) (err error) {
	logger, err := newLogger(flags.verbose)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()

	opts, err := parseOptions()
	if err != nil {
		return
	}

	results := benchmark.New(logger, opts...).Run()
	var mismatches int
	for _, res := range results {
		mismatches += res.Mismatches
	}
	if mismatches > 0 {
		return fmt.Errorf("%d mismatch(es) against the reference sort", mismatches)
	}
	return
}

func parseOptions() (opts []utils.OptionExtender, err error) {
	sizes := make([]int, 0, 4)
	for _, s := range strings.Split(flags.sizes, ",") {
		size, err := cast.ToIntE(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	opts = append(opts, benchmark.Sizes(sizes...), benchmark.Rounds(flags.rounds))

	if len(flags.algos) > 0 {
		algos := make([]sort.Algorithm, 0, len(flags.algos))
		for _, name := range flags.algos {
			algo, err := sort.ParseAlgorithm(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			algos = append(algos, algo)
		}
		opts = append(opts, benchmark.Algorithms(algos...))
	}
	if flags.seed != 0 {
		opts = append(opts, benchmark.Seed(flags.seed))
	}
	if flags.simpleQuick {
		opts = append(opts, benchmark.SimpleQuickSort())
	}
	return
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
