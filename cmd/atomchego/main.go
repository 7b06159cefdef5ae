// Command atomchego runs a Monte Carlo Tree Search analysis of an atomic
// chess position and prints a ranked table of candidate moves, the
// idiomatic-Go counterpart of the reference implementation's clap-derived
// CLI (model/args.rs), here parsed with github.com/jessevdk/go-flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/lindwurm-chess/atomchego/attacks"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/fen"
	"github.com/lindwurm-chess/atomchego/internal/applog"
	"github.com/lindwurm-chess/atomchego/mcts"
	"github.com/lindwurm-chess/atomchego/prng"
	"github.com/lindwurm-chess/atomchego/report"
)

var log = applog.Get()

// metricsLevel mirrors model/metrics_level.rs's MetricsLevel enum: how
// often Run's progress is reported while the search is in flight.
type metricsLevel string

const (
	metricsSilent  metricsLevel = "silent"
	metricsMinimal metricsLevel = "minimal"
	metricsReduced metricsLevel = "reduced"
	metricsFull    metricsLevel = "full"
)

// reportInterval returns how many iterations elapse between progress
// reports at this level, generalizing the original's hardcoded
// "iteration % 100" into the four documented levels (0 means "only at the
// very end").
func (l metricsLevel) reportInterval() uint64 {
	switch l {
	case metricsReduced:
		return 1000
	case metricsFull:
		return 100
	default:
		return 0
	}
}

type options struct {
	FEN           string       `short:"f" long:"fen" description:"Starting position as FEN" default:"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"`
	MaxIterations uint64       `short:"i" long:"max-iterations" description:"Maximum number of search iterations to run" default:"18446744073709551615"`
	MetricsLevel  metricsLevel `short:"m" long:"metrics-level" description:"Level of progress reporting (silent, minimal, reduced, full)" default:"full"`
	Seed          uint64       `short:"s" long:"seed" description:"Random number seed used for rollouts" default:"19870826"`
	Verbose       bool         `short:"v" long:"verbose" description:"Enable debug logging"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Errorf("atomchego: %v", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return err
	}

	if opts.Verbose {
		applog.SetLevel(logging.DEBUG)
	}

	pos, err := parsePosition(opts.FEN)
	if err != nil {
		return err
	}

	driver := mcts.New(pos, prng.NewFromSeed(opts.Seed))

	ctx := context.Background()
	interval := opts.MetricsLevel.reportInterval()
	if interval == 0 || opts.MetricsLevel == metricsSilent {
		driver.Run(ctx, opts.MaxIterations)
	} else {
		runWithProgress(ctx, driver, opts.MaxIterations, interval)
	}

	if opts.MetricsLevel == metricsSilent {
		return nil
	}

	metrics := report.Rank(driver.Tree, pos.ActiveColor)
	fmt.Fprintln(out, report.RenderTable(metrics))
	return nil
}

// runWithProgress runs the search in fixed-size chunks so a progress line
// can be logged between them, since mcts.Driver.Run only checks ctx.Done
// between whole iterations and has no notion of a reporting cadence itself.
func runWithProgress(ctx context.Context, driver *mcts.Driver, maxIterations, interval uint64) {
	var done uint64
	for done < maxIterations {
		chunk := interval
		if remaining := maxIterations - done; remaining < chunk {
			chunk = remaining
		}
		ran := driver.Run(ctx, chunk)
		done += ran
		log.Infof("completed %d iterations (tree size %d)", done, driver.Tree.Size())
		if ran < chunk {
			return // context was cancelled mid-chunk
		}
	}
}

// parsePosition recovers from fen.Parse's panic-on-malformed-input contract
// and turns it into a plain error, since cmd/atomchego is the one boundary
// in this module where untrusted input (a user-supplied --fen flag) meets
// code that otherwise assumes valid input throughout.
func parsePosition(fenStr string) (pos board.Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid FEN %q: %v", fenStr, r)
		}
	}()
	pos = fen.Parse(fenStr)
	return pos, nil
}

func init() {
	attacks.Init()
	board.InitZobristKeys()
}
