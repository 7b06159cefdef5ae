// Package mcts drives a Monte Carlo Tree Search over atomic chess positions:
// Select walks the tree by UCT down to a node worth expanding, Expand adds
// one child per legal move, Simulate plays a random rollout to a terminal
// evaluation, and Backpropagate folds that result back up the path to the
// root. It is grounded on the distilled search/{select,expand,simulate,
// backpropagate}.rs modules of the original reference implementation, there
// being no move-search code of this shape in the teacher package to adapt.
package mcts

import (
	"context"
	"math"

	"github.com/lindwurm-chess/atomchego/apply"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/evaluator"
	"github.com/lindwurm-chess/atomchego/internal/applog"
	"github.com/lindwurm-chess/atomchego/movegen"
	"github.com/lindwurm-chess/atomchego/prng"
	"github.com/lindwurm-chess/atomchego/searchtree"
)

var log = applog.Get()

// Driver owns the search tree and random source for a single analysis of
// one root position. It is not safe for concurrent use by multiple
// goroutines: RunIteration mutates Tree in place.
type Driver struct {
	Tree   *searchtree.Tree
	random *prng.PRNG
}

// New creates a driver rooted at pos, with rollouts drawn from the given
// random source.
func New(pos board.Position, random *prng.PRNG) *Driver {
	return &Driver{
		Tree:   searchtree.New(pos),
		random: random,
	}
}

// Run performs up to maxIterations search iterations, stopping early if ctx
// is cancelled. It returns the number of iterations actually completed.
func (d *Driver) Run(ctx context.Context, maxIterations uint64) uint64 {
	var i uint64
	for ; i < maxIterations; i++ {
		select {
		case <-ctx.Done():
			log.Infof("search stopped after %d iterations: %v", i, ctx.Err())
			return i
		default:
		}
		d.RunIteration()
	}
	return i
}

// RunIteration performs one Select-Expand-Simulate-Backpropagate cycle.
func (d *Driver) RunIteration() {
	selected := d.Select()
	leaf := d.Expand(selected)
	result := d.Simulate(leaf)
	d.Backpropagate(leaf, result)
}

// Select descends the tree from the root, always following the child with
// the highest UCT score, until it reaches a node with no children (never
// expanded) or an unvisited child (chosen immediately, since an unvisited
// node carries no information to compare against its siblings). Nodes whose
// evaluation is already conclusive (a forced win, loss or draw) are never
// selected: there is nothing left to learn by simulating through them
// again.
func (d *Driver) Select() int {
	current := d.Tree.Root()

	for {
		node := &d.Tree.Nodes[current]
		if len(node.Children) == 0 {
			return current
		}

		bestUCT := -math.MaxFloat64
		bestChild := -1
		for _, childIndex := range node.Children {
			child := &d.Tree.Nodes[childIndex]
			if child.Evaluation.IsConclusive() {
				continue
			}
			if child.IsNotVisited() {
				return childIndex
			}

			uct := d.Tree.UCT(current, childIndex)
			if uct > bestUCT {
				bestUCT = uct
				bestChild = childIndex
			}
		}

		if bestChild == -1 {
			// Every child is conclusive: nothing left to explore below
			// this node, stay here so Simulate can re-confirm it.
			return current
		}
		current = bestChild
	}
}

// Expand adds one child node per legal move available at nodeIndex, unless
// the node has not yet been visited (in which case it has no rollout
// information yet and should be simulated first) or it has no legal moves
// (a terminal node, which Select will never hand to Expand anyway once its
// Evaluation has been set). It returns the index of the last child added,
// or nodeIndex unchanged if no child was added.
func (d *Driver) Expand(nodeIndex int) int {
	node := &d.Tree.Nodes[nodeIndex]
	if node.IsNotVisited() {
		return nodeIndex
	}

	legalMoves := movegen.Legal(node.Board)
	if legalMoves.Count == 0 {
		return nodeIndex
	}

	base := node.Board
	last := nodeIndex
	for _, m := range legalMoves.Slice() {
		child := base
		apply.MakeMove(&child, m)
		last = d.Tree.AddChild(nodeIndex, child, m)
	}
	return last
}

// Result carries the outcome of a single rollout: the ply depth at which a
// terminal evaluation was reached (0 if the starting node was already
// terminal) and that evaluation.
type Result struct {
	Depth      int
	Evaluation enum.Evaluation
}

// maxSimulationPlies bounds a single rollout, matching the reference
// implementation's rollout cap. The fifty-move rule only ends a stretch of
// 100 plies without a pawn move or capture, so it does not by itself end a
// game within this many plies; the explicit bound keeps a single Simulate
// call from running away, scoring a capped rollout as a draw.
const maxSimulationPlies = 1000

// Simulate plays uniformly-random legal moves from nodeIndex's position
// until the game reaches a terminal evaluation, then returns how many
// plies that took and what the outcome was. Threefold repetition is
// tracked against the principal variation leading to nodeIndex, so a
// rollout that repeats a position already seen on the way down is
// correctly scored as a draw.
func (d *Driver) Simulate(nodeIndex int) Result {
	node := &d.Tree.Nodes[nodeIndex]

	pos := node.Board
	hashes := d.Tree.PrincipalVariationHashes(nodeIndex)
	lastHash := node.Hash
	depth := 0

	for {
		if hasThreeOccurrences(hashes, lastHash) {
			pos.RepetitionFlag = true
		}

		legalMoves := movegen.Legal(pos)
		evaluation := evaluator.Evaluate(pos, legalMoves, pos.RepetitionFlag)
		if evaluation != enum.EvalInconclusive {
			return Result{Depth: depth, Evaluation: evaluation}
		}
		if depth >= maxSimulationPlies {
			return Result{Depth: depth, Evaluation: enum.EvalDraw}
		}

		m := legalMoves.Moves[d.random.NextRange(0, uint32(legalMoves.Count))]
		apply.MakeMove(&pos, m)
		lastHash = pos.Hash()
		hashes = append(hashes, lastHash)
		depth++
	}
}

// Backpropagate folds a rollout result into the score of nodeIndex and
// every one of its ancestors up to the root. If the rollout terminated
// immediately (depth 0), nodeIndex's own Evaluation is recorded as
// conclusive, so future Select calls skip re-simulating it; its own score
// is left untouched, since a conclusive node is not chosen by UCT anymore.
// Every ancestor still receives the usual score increment, since the
// rollout outcome is exactly as informative to them as any other
// simulation reached through this path.
func (d *Driver) Backpropagate(nodeIndex int, result Result) {
	if result.Depth == 0 {
		d.Tree.Nodes[nodeIndex].Evaluation = result.Evaluation
	}

	for index := nodeIndex; index != searchtree.NoParent; {
		node := &d.Tree.Nodes[index]
		if !node.Evaluation.IsConclusive() {
			switch result.Evaluation {
			case enum.EvalDraw:
				node.Score.Draws++
			case enum.EvalWinWhite:
				node.Score.WinsWhite++
			case enum.EvalWinBlack:
				node.Score.WinsBlack++
			}
		}
		index = node.Parent
	}
}

func hasThreeOccurrences(hashes []uint64, value uint64) bool {
	strikes := 0
	for _, h := range hashes {
		if h == value {
			strikes++
			if strikes >= 3 {
				return true
			}
		}
	}
	return false
}
