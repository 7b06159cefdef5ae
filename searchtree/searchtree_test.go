package searchtree

import (
	"testing"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/fen"
)

func TestMain(m *testing.M) {
	board.InitZobristKeys()
	m.Run()
}

func TestNewTreeHasOnlyTheRoot(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	tree := New(pos)

	if tree.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", tree.Size())
	}
	if tree.Root() != 0 {
		t.Fatalf("Root() = %d, want 0", tree.Root())
	}
	root := &tree.Nodes[tree.Root()]
	if root.Parent != NoParent {
		t.Fatalf("root.Parent = %d, want NoParent", root.Parent)
	}
	if !root.IsNotVisited() {
		t.Fatalf("a freshly created root should not be visited")
	}
}

func TestAddChildLinksParentAndChild(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	tree := New(pos)

	childPos := fen.Parse("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	childIndex := tree.AddChild(tree.Root(), childPos, 0)

	if childIndex != 1 {
		t.Fatalf("AddChild returned index %d, want 1", childIndex)
	}
	root := &tree.Nodes[tree.Root()]
	if len(root.Children) != 1 || root.Children[0] != childIndex {
		t.Fatalf("root.Children = %v, want [%d]", root.Children, childIndex)
	}
	if tree.Nodes[childIndex].Parent != tree.Root() {
		t.Fatalf("child.Parent = %d, want root", tree.Nodes[childIndex].Parent)
	}
}

func TestPrincipalVariationHashesIncludesEveryAncestor(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	tree := New(pos)
	child := tree.AddChild(tree.Root(), pos, 0)
	grandchild := tree.AddChild(child, pos, 0)

	hashes := tree.PrincipalVariationHashes(grandchild)
	if len(hashes) != 3 {
		t.Fatalf("len(hashes) = %d, want 3 (grandchild, child, root)", len(hashes))
	}
}

func TestUCTFavorsMoreWinsForTheMoverAtParent(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	tree := New(pos)
	strong := tree.AddChild(tree.Root(), pos, 0)
	weak := tree.AddChild(tree.Root(), pos, 0)

	tree.Nodes[strong].Score = Score{WinsWhite: 8, WinsBlack: 0, Draws: 2}
	tree.Nodes[weak].Score = Score{WinsWhite: 1, WinsBlack: 9, Draws: 0}
	tree.Nodes[tree.Root()].Score = Score{WinsWhite: 9, WinsBlack: 9, Draws: 2}

	if got := tree.UCT(tree.Root(), strong); got <= tree.UCT(tree.Root(), weak) {
		t.Fatalf("UCT(strong) = %v should exceed UCT(weak) = %v when it is white to move at the root",
			got, tree.UCT(tree.Root(), weak))
	}
}

func TestUCTUsesTheParentsActiveColorForTheWinRatio(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	tree := New(pos)
	child := tree.AddChild(tree.Root(), pos, 0)

	tree.Nodes[child].Score = Score{WinsWhite: 0, WinsBlack: 10, Draws: 0}
	tree.Nodes[tree.Root()].Score = Score{WinsWhite: 0, WinsBlack: 10, Draws: 0}

	got := tree.UCT(tree.Root(), child)
	if got <= 1.0 {
		t.Fatalf("UCT = %v, want a ratio near 1.0 plus exploration term when black (the mover at "+
			"the root) has won every rollout through this child", got)
	}
}

func TestScoreVisitsSumsAllThreeCounters(t *testing.T) {
	s := Score{Draws: 1, WinsWhite: 2, WinsBlack: 3}
	if got := s.Visits(); got != 6 {
		t.Fatalf("Visits() = %d, want 6", got)
	}
}

func TestNodeEvaluationDefaultsToInconclusive(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	tree := New(pos)
	if tree.Nodes[tree.Root()].Evaluation.IsConclusive() {
		t.Fatalf("a fresh node's Evaluation should default to Inconclusive")
	}
	if tree.Nodes[tree.Root()].Evaluation != enum.EvalInconclusive {
		t.Fatalf("a fresh node's Evaluation should be EvalInconclusive")
	}
}
