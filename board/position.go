package board

import (
	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/enum"
)

// Position represents a chessboard state that can be converted to or parsed
// from a FEN string (see package fen). It is a plain value type: copying a
// Position by assignment deep-copies it, which is exactly what the MCTS
// driver relies on when it clones a node's board before simulating or
// applying a pseudo-legal move (see spec.md §3 "Lifecycles").
type Position struct {
	Bitboards      [12]uint64
	ActiveColor    enum.Color
	CastlingRights enum.CastlingFlag
	// EPTarget is the square behind a just-advanced pawn, or enum.NoSquare.
	EPTarget       int
	HalfmoveClock  int
	FullmoveNumber int
	// RepetitionFlag is set by the simulator (package mcts) when it detects
	// a position has occurred three times; it is not derived from the
	// position's own fields, matching spec.md §3's TreeNode/Board split.
	RepetitionFlag bool
}

// NewStartingPosition returns the standard chess starting position.
func NewStartingPosition() Position {
	return Position{
		Bitboards: [12]uint64{
			enum.PieceWPawn:   0xFF00,
			enum.PieceWKnight: enum.B1 | enum.G1,
			enum.PieceWBishop: enum.C1 | enum.F1,
			enum.PieceWRook:   enum.A1 | enum.H1,
			enum.PieceWQueen:  enum.D1,
			enum.PieceWKing:   enum.E1,
			enum.PieceBPawn:   0xFF000000000000,
			enum.PieceBKnight: enum.B8 | enum.G8,
			enum.PieceBBishop: enum.C8 | enum.F8,
			enum.PieceBRook:   enum.A8 | enum.H8,
			enum.PieceBQueen:  enum.D8,
			enum.PieceBKing:   enum.E8,
		},
		ActiveColor:    enum.ColorWhite,
		CastlingRights: enum.CastlingWhiteShort | enum.CastlingWhiteLong | enum.CastlingBlackShort | enum.CastlingBlackLong,
		EPTarget:       enum.NoSquare,
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// White returns the occupancy bitboard of all white pieces.
func (p *Position) White() uint64 {
	var bb uint64
	for i := enum.PieceWPawn; i <= enum.PieceWKing; i++ {
		bb |= p.Bitboards[i]
	}
	return bb
}

// Black returns the occupancy bitboard of all black pieces.
func (p *Position) Black() uint64 {
	var bb uint64
	for i := enum.PieceBPawn; i <= enum.PieceBKing; i++ {
		bb |= p.Bitboards[i]
	}
	return bb
}

// Occupancy returns the bitboard of every occupied square.
func (p *Position) Occupancy() uint64 {
	return p.White() | p.Black()
}

// ColorBitboard returns the occupancy of the given color.
func (p *Position) ColorBitboard(c enum.Color) uint64 {
	if c == enum.ColorWhite {
		return p.White()
	}
	return p.Black()
}

// PieceAt returns the piece standing on the square, or [enum.PieceNone].
func (p *Position) PieceAt(square int) enum.Piece {
	bb := uint64(1) << square
	for piece, bitboard := range p.Bitboards {
		if bitboard&bb != 0 {
			return piece
		}
	}
	return enum.PieceNone
}

// HasPawnAt reports whether any pawn (either color) stands on square.
func (p *Position) HasPawnAt(square int) bool {
	bb := uint64(1) << square
	return (p.Bitboards[enum.PieceWPawn]|p.Bitboards[enum.PieceBPawn])&bb != 0
}

// HasPawnOfColorAt reports whether a pawn of the given color stands on square.
func (p *Position) HasPawnOfColorAt(c enum.Color, square int) bool {
	bb := uint64(1) << square
	if c == enum.ColorWhite {
		return p.Bitboards[enum.PieceWPawn]&bb != 0
	}
	return p.Bitboards[enum.PieceBPawn]&bb != 0
}

// KingSquare returns the square of the color's king, or -1 if it has none
// (the king was exploded or captured — a legal, terminal state in atomic
// chess per spec.md §1).
func (p *Position) KingSquare(c enum.Color) int {
	kingBB := p.Bitboards[enum.PieceWKing]
	if c == enum.ColorBlack {
		kingBB = p.Bitboards[enum.PieceBKing]
	}
	if kingBB == 0 {
		return -1
	}
	return bitutil.BitScan(kingBB)
}

// IsWhitePiece reports whether the piece index belongs to white.
func IsWhitePiece(piece enum.Piece) bool { return piece <= enum.PieceWKing }

// PieceColor returns the color of a non-PieceNone piece.
func PieceColor(piece enum.Piece) enum.Color {
	if IsWhitePiece(piece) {
		return enum.ColorWhite
	}
	return enum.ColorBlack
}
