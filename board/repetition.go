// repetition.go implements string-keyed threefold-repetition bookkeeping.
// It mirrors the teacher's game/repetition.go key scheme (piece placement +
// active color + castling rights + legal-move set), kept distinct from the
// Zobrist hash so a hash collision can never masquerade as a genuine
// repetition. The MCTS simulator (package mcts) does not use it: it counts
// repetitions by Zobrist hash.

package board

import (
	"strings"

	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/enum"
)

// RepetitionKey returns a compact string uniquely identifying the position
// for repetition purposes. legalMoves should be the position's own legal
// move list; including it disambiguates positions that have identical
// piece placement but different move rights (e.g. a differing en passant
// target that is not actually capturable).
func RepetitionKey(p Position, legalMoves MoveList) string {
	var b strings.Builder
	b.Grow(64)

	for i := enum.PieceWPawn; i <= enum.PieceBKing; i++ {
		bb := p.Bitboards[i]
		for bb > 0 {
			square := bitutil.PopLSB(&bb)
			b.WriteByte(enum.PieceSymbols[i])
			b.WriteByte(byte(square))
		}
	}
	b.WriteByte(byte(p.ActiveColor))
	b.WriteByte(byte(p.CastlingRights))

	for i := 0; i < legalMoves.Count; i++ {
		m := legalMoves.Moves[i]
		b.WriteByte(byte(m))
		b.WriteByte(byte(m >> 8))
	}

	return b.String()
}

// RepetitionBook counts how many times each position (by RepetitionKey) has
// been reached so far in a game or a single simulated rollout.
type RepetitionBook struct {
	counts map[string]int
}

// NewRepetitionBook creates an empty book.
func NewRepetitionBook() *RepetitionBook {
	return &RepetitionBook{counts: make(map[string]int, 64)}
}

// Record increments the count for key and returns the new count.
func (r *RepetitionBook) Record(key string) int {
	r.counts[key]++
	return r.counts[key]
}

// IsThreefold reports whether any recorded position has reached 3 counts.
func (r *RepetitionBook) IsThreefold() bool {
	for _, c := range r.counts {
		if c >= 3 {
			return true
		}
	}
	return false
}
