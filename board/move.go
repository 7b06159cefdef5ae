// Package board implements the atomic-chess position model: the packed Move
// encoding, the bitboard-backed Position, and Zobrist hashing. It has no
// notion of legality or move generation (see package movegen) and no notion
// of how a move changes a position (see package apply) — it only knows how
// to store and query a position, the same separation of concerns the
// teacher package drew between types.go and movegen.go/game.go.
package board

import "github.com/lindwurm-chess/atomchego/enum"

// Move represents a chess move, encoded as a 16 bit unsigned integer:
//
//	0-5:   To (destination) square index;
//	6-11:  From (origin/source) square index;
//	12-13: Promotion piece (see [enum.PromotionFlag]);
//	14-15: Move type (see [enum.MoveType]).
//
// Two incompatible encodings are common in the reference material (a
// struct-with-tag and this packed form); either is a faithful
// implementation of the data model. The packed form is adopted here
// because it keeps MoveList allocation-free.
type Move uint16

// NewMove creates a new non-promotion move. The promotion field is set to
// [enum.PromotionQueen] but ignored unless Type() is [enum.MovePromotion].
func NewMove(from, to int, moveType enum.MoveType) Move {
	return Move(to | (from << 6) | (enum.PromotionQueen << 12) | (moveType << 14))
}

// NewPromotionMove creates a new promotion move to the given piece kind.
func NewPromotionMove(from, to int, promo enum.PromotionFlag) Move {
	return Move(to | (from << 6) | (promo << 12) | (enum.MovePromotion << 14))
}

// NoMove is the all-bits-set move, used as a sentinel for "no last move"
// (the root of a search tree has no move that produced it).
const NoMove Move = 0xFFFF

func (m Move) To() int                     { return int(m & 0x3F) }
func (m Move) From() int                   { return int(m>>6) & 0x3F }
func (m Move) PromotionPiece() enum.PromotionFlag { return enum.PromotionFlag(m>>12) & 0x3 }
func (m Move) Type() enum.MoveType         { return enum.MoveType(m>>14) & 0x3 }

func (m Move) IsCastle() bool     { return m.Type() == enum.MoveCastling }
func (m Move) IsEnPassant() bool  { return m.Type() == enum.MoveEnPassant }
func (m Move) IsPromotion() bool  { return m.Type() == enum.MovePromotion }

// fixed castling squares, per spec.md §3: E1<->G1/C1, E8<->G8/C8.
const (
	SquareE1 = enum.SE1
	SquareG1 = enum.SG1
	SquareC1 = enum.SC1
	SquareA1 = enum.SA1
	SquareF1 = enum.SF1
	SquareD1 = enum.SD1
	SquareH1 = enum.SH1
	SquareE8 = enum.SE8
	SquareG8 = enum.SG8
	SquareC8 = enum.SC8
	SquareA8 = enum.SA8
	SquareF8 = enum.SF8
	SquareD8 = enum.SD8
	SquareH8 = enum.SH8
)

// NewCastleMove constructs one of the four fixed castling moves.
func NewCastleMove(from, to int) Move {
	return Move(to | (from << 6) | (enum.PromotionQueen << 12) | (enum.MoveCastling << 14))
}

// NewEnPassantMove constructs an en passant capture.
func NewEnPassantMove(from, to int) Move {
	return Move(to | (from << 6) | (enum.PromotionQueen << 12) | (enum.MoveEnPassant << 14))
}

// MoveList stores moves in a preallocated array to avoid dynamic memory
// allocation during move generation and simulation rollouts.
type MoveList struct {
	// Maximum number of moves per chess position is 218 in orthodox chess;
	// the atomic variant never exceeds it since it only removes moves
	// (king self-detonation), never adds them.
	// See https://www.talkchess.com/forum/viewtopic.php?t=61792
	Moves [218]Move
	Count int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of Moves.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.Count]
}

// Find returns the index of the first move in the list whose From/To match
// m, or -1 if none does. Promotion kind is not compared (callers that care,
// such as a UI accepting a player's move, should consult PromotionPiece()
// on the returned list entry and rewrite it to the desired promotion).
func (l *MoveList) Find(from, to int) int {
	for i := 0; i < l.Count; i++ {
		if l.Moves[i].From() == from && l.Moves[i].To() == to {
			return i
		}
	}
	return -1
}
