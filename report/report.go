// Package report turns a finished search tree into a human-readable
// ranking of the root's candidate moves, grounded on the reference
// implementation's search/interpret.rs (ranking order) and
// view/print_metrics.rs (the columns worth showing), rendered with
// github.com/clinaresl/table the way the pgntools chess-notation package in
// the example corpus renders board diagrams.
package report

import (
	"fmt"

	"github.com/clinaresl/table"

	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/notation"
	"github.com/lindwurm-chess/atomchego/searchtree"
)

// ChildMetrics summarizes one of the root's children for reporting.
type ChildMetrics struct {
	Move       string
	Evaluation enum.Evaluation
	Visits     uint64
	WinCount   uint64
	WinPercent float64
}

// Rank returns the root's children, ordered best-first for ourColor: a
// forced win for ourColor sorts to the front, a forced win for the
// opponent sorts to the back, and within each of these groups children are
// ordered by ourColor's raw recorded win count through that child,
// descending; children with equal counts keep the root's child order. This
// mirrors compare_white/compare_black in the reference implementation
// (which compare score.wins_white/score.wins_black directly, not a
// ratio), generalized to a single function parameterized on color instead
// of two near-duplicate comparators.
func Rank(tree *searchtree.Tree, ourColor enum.Color) []ChildMetrics {
	root := &tree.Nodes[tree.Root()]
	metrics := make([]ChildMetrics, len(root.Children))

	ourWin, theirWin := enum.EvalWinWhite, enum.EvalWinBlack
	if ourColor == enum.ColorBlack {
		ourWin, theirWin = enum.EvalWinBlack, enum.EvalWinWhite
	}

	for i, childIndex := range root.Children {
		child := &tree.Nodes[childIndex]
		visits := child.Score.Visits()

		var ours uint64
		if ourColor == enum.ColorWhite {
			ours = child.Score.WinsWhite
		} else {
			ours = child.Score.WinsBlack
		}

		winPercent := 0.0
		if visits > 0 {
			winPercent = 100 * float64(ours) / float64(visits)
		}

		metrics[i] = ChildMetrics{
			Move:       notation.UCI(child.LastMove),
			Evaluation: child.Evaluation,
			Visits:     visits,
			WinCount:   ours,
			WinPercent: winPercent,
		}
	}

	sortMetrics(metrics, ourWin, theirWin)
	return metrics
}

func sortMetrics(metrics []ChildMetrics, ourWin, theirWin enum.Evaluation) {
	rank := func(m ChildMetrics) int {
		switch m.Evaluation {
		case ourWin:
			return 0
		case theirWin:
			return 2
		default:
			return 1
		}
	}

	// Simple insertion sort: the candidate-move lists MCTS reports on are
	// small (at most a few dozen legal moves), so an O(n^2) sort keeps the
	// comparator readable without needing sort.Slice's closure-capture
	// indirection.
	for i := 1; i < len(metrics); i++ {
		j := i
		for j > 0 && less(metrics[j], metrics[j-1], rank) {
			metrics[j], metrics[j-1] = metrics[j-1], metrics[j]
			j--
		}
	}
}

func less(a, b ChildMetrics, rank func(ChildMetrics) int) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	return a.WinCount > b.WinCount
}

// RenderTable formats metrics as a bordered table, most favorable move
// first.
func RenderTable(metrics []ChildMetrics) string {
	tab, err := table.NewTable("||c|c|c|c||")
	if err != nil {
		return fmt.Sprintf("report: could not build table: %v", err)
	}

	tab.AddDoubleRule()
	tab.AddRow("Move", "Evaluation", "Visits", "Win %")
	tab.AddDoubleRule()
	for _, m := range metrics {
		tab.AddRow(m.Move, m.Evaluation.String(), m.Visits, fmt.Sprintf("%.1f", m.WinPercent))
	}
	tab.AddDoubleRule()

	return fmt.Sprintf("%v", tab)
}
