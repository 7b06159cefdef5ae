// Package searchtree implements the arena-indexed search tree the MCTS
// driver (package mcts) walks: a flat slice of nodes addressed by integer
// index rather than a pointer graph, the same shape the teacher's own
// bitboard tables use arrays instead of per-square allocations for. Each
// node owns a cloned board.Position, its Zobrist hash, integer parent and
// child links, the move that produced it, and the running win/draw/loss
// tally the select step turns into a UCT score.
package searchtree

import (
	"math"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

// NoParent marks the root node, which has no parent index.
const NoParent = -1

// Score accumulates rollout outcomes reached through a node, one counter
// per absolute color plus draws. Unlike a single win/loss counter, keeping
// both colors lets a single node serve either side's perspective when the
// tree is walked by select (see UCT).
type Score struct {
	Draws     uint64
	WinsWhite uint64
	WinsBlack uint64
}

// Visits returns the total number of rollouts recorded through this node.
func (s Score) Visits() uint64 {
	return s.Draws + s.WinsWhite + s.WinsBlack
}

// Node is a single position in the search tree.
type Node struct {
	Board      board.Position
	Hash       uint64
	Parent     int
	Children   []int
	LastMove   board.Move
	Evaluation enum.Evaluation
	Score      Score
}

// IsNotVisited reports whether no rollout has ever been recorded through
// this node. A node whose own rollout ended at depth 0 keeps a zero score
// (see mcts.Driver.Backpropagate), so it still reports true.
func (n *Node) IsNotVisited() bool {
	return n.Score.Visits() == 0
}

// Tree is the arena: every node is addressed by its index into Nodes, never
// by pointer, so a Tree can be copied, serialized, or grown by appends
// without invalidating any index already handed out.
type Tree struct {
	Nodes []Node
}

// New creates a tree whose only node is the root, at position root.
func New(root board.Position) *Tree {
	return &Tree{
		Nodes: []Node{{
			Board:    root,
			Hash:     root.Hash(),
			Parent:   NoParent,
			LastMove: board.NoMove,
		}},
	}
}

// Root returns the tree's root node index, always 0.
func (t *Tree) Root() int { return 0 }

// Size returns the number of nodes currently in the tree.
func (t *Tree) Size() int { return len(t.Nodes) }

// AddChild appends a new node reached from parent by playing m, and links
// it into parent's Children. It returns the new node's index.
func (t *Tree) AddChild(parent int, pos board.Position, m board.Move) int {
	childIndex := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		Board:    pos,
		Hash:     pos.Hash(),
		Parent:   parent,
		LastMove: m,
	})
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, childIndex)
	return childIndex
}

// PrincipalVariationHashes returns the Zobrist hash of every node on the
// path from the root down to index, inclusive, in no particular order. The
// simulator starts its list of seen hashes from this before a rollout, since a
// position repeated on the way to the node being simulated still counts
// toward threefold repetition.
func (t *Tree) PrincipalVariationHashes(index int) []uint64 {
	var hashes []uint64
	for index != NoParent {
		node := &t.Nodes[index]
		hashes = append(hashes, node.Hash)
		index = node.Parent
	}
	return hashes
}

// UCT computes the upper confidence bound for child, as seen from the
// mover at parent: the win count counted in the ratio is the count for
// whichever color is to move at parent, since that is the side choosing
// whether to descend into child.
//
// See https://en.wikipedia.org/wiki/Monte_Carlo_tree_search and
// https://www.chessprogramming.org/UCT
func (t *Tree) UCT(parent, child int) float64 {
	parentNode := &t.Nodes[parent]
	childNode := &t.Nodes[child]

	childVisits := float64(childNode.Score.Visits())
	parentVisits := float64(parentNode.Score.Visits())

	var wins uint64
	if parentNode.Board.ActiveColor == enum.ColorWhite {
		wins = childNode.Score.WinsWhite
	} else {
		wins = childNode.Score.WinsBlack
	}
	winRatio := float64(wins) / childVisits

	return winRatio + math.Sqrt2*math.Sqrt(math.Log(parentVisits)/childVisits)
}
