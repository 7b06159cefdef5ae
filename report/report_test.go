package report

import (
	"strings"
	"testing"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/fen"
	"github.com/lindwurm-chess/atomchego/searchtree"
)

func TestMain(m *testing.M) {
	board.InitZobristKeys()
	m.Run()
}

func newRootedTree(t *testing.T) *searchtree.Tree {
	t.Helper()
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	return searchtree.New(pos)
}

func newMove(from, to int) board.Move {
	return board.NewMove(from, to, enum.MoveNormal)
}

func TestRankPutsAForcedWinForOurColorFirst(t *testing.T) {
	tree := newRootedTree(t)
	root := tree.Root()
	pos := tree.Nodes[root].Board

	losing := tree.AddChild(root, pos, newMove(enum.SE2, enum.SE3))
	winning := tree.AddChild(root, pos, newMove(enum.SD2, enum.SD4))

	tree.Nodes[losing].Evaluation = enum.EvalWinBlack
	tree.Nodes[losing].Score = searchtree.Score{WinsBlack: 5}
	tree.Nodes[winning].Evaluation = enum.EvalWinWhite
	tree.Nodes[winning].Score = searchtree.Score{WinsWhite: 5}

	metrics := Rank(tree, enum.ColorWhite)
	if len(metrics) != 2 {
		t.Fatalf("len(metrics) = %d, want 2", len(metrics))
	}
	if metrics[0].Evaluation != enum.EvalWinWhite {
		t.Fatalf("metrics[0].Evaluation = %v, want the forced win for white to rank first", metrics[0].Evaluation)
	}
	if metrics[1].Evaluation != enum.EvalWinBlack {
		t.Fatalf("metrics[1].Evaluation = %v, want the forced loss to rank last", metrics[1].Evaluation)
	}
}

func TestRankOrdersOpenMovesByRawWinCountNotPercent(t *testing.T) {
	tree := newRootedTree(t)
	root := tree.Root()
	pos := tree.Nodes[root].Board

	// highPercent has a perfect win ratio but far fewer recorded wins than
	// highCount, which should still rank first: the reference implementation
	// orders by the raw win counter, not by ratio.
	highPercent := tree.AddChild(root, pos, newMove(enum.SE2, enum.SE3))
	highCount := tree.AddChild(root, pos, newMove(enum.SD2, enum.SD4))

	tree.Nodes[highPercent].Score = searchtree.Score{WinsWhite: 3}
	tree.Nodes[highCount].Score = searchtree.Score{WinsWhite: 10, WinsBlack: 40}

	metrics := Rank(tree, enum.ColorWhite)
	if metrics[0].WinCount != 10 {
		t.Fatalf("metrics not ordered by descending raw win count: %+v", metrics)
	}
}

func TestRankFromBlacksPerspectiveUsesBlackWinCounter(t *testing.T) {
	tree := newRootedTree(t)
	root := tree.Root()
	pos := tree.Nodes[root].Board

	child := tree.AddChild(root, pos, newMove(enum.SE2, enum.SE3))
	tree.Nodes[child].Score = searchtree.Score{WinsWhite: 1, WinsBlack: 9}

	metrics := Rank(tree, enum.ColorBlack)
	if metrics[0].WinPercent != 90 {
		t.Fatalf("WinPercent = %v, want 90 when ranking from black's perspective", metrics[0].WinPercent)
	}
}

func TestRenderTableIncludesEveryMoveString(t *testing.T) {
	metrics := []ChildMetrics{
		{Move: "e2e4", Evaluation: enum.EvalInconclusive, Visits: 100, WinPercent: 55.5},
		{Move: "d2d4", Evaluation: enum.EvalInconclusive, Visits: 80, WinPercent: 44.1},
	}

	out := RenderTable(metrics)
	if !strings.Contains(out, "e2e4") || !strings.Contains(out, "d2d4") {
		t.Fatalf("rendered table missing a move string:\n%s", out)
	}
}
