// Package apply implements move execution, including the atomic explosion
// rule: whenever a move captures, the captured square and the capturing
// piece are destroyed, along with every non-pawn piece within one square
// of the capture (pawns elsewhere in the blast survive). It is grounded on
// the teacher's types/types.go Position.MakeMove, generalized with the
// explosion step atomic chess adds on top of orthodox move execution.
package apply

import (
	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

// Outcome reports the side effects of a MakeMove call that a caller (the
// terminal evaluator, the MCTS simulator) cannot cheaply re-derive from the
// resulting Position alone.
type Outcome struct {
	// Exploded is true if the move triggered an atomic explosion.
	Exploded bool
	// DestroyedSquares lists every square emptied by the explosion. The
	// capturing piece's origin square is not listed: the move itself clears
	// it before the explosion.
	DestroyedSquares []int
}

// MakeMove applies m to pos, mutating it in place, and reports the
// explosion side effects if any. The caller must ensure m is at least
// pseudo-legal; MakeMove does not itself check whether the move leaves the
// mover's own king in check (see package movegen for that).
func MakeMove(pos *board.Position, m board.Move) Outcome {
	from, to := m.From(), m.To()
	movedPiece := pos.PieceAt(from)

	var outcome Outcome

	switch m.Type() {
	case enum.MoveNormal:
		clearSquare(pos, movedPiece, from)
		if captured := pos.PieceAt(to); captured != enum.PieceNone {
			outcome.Exploded = true
			outcome.DestroyedSquares = explode(pos, to)
			pos.HalfmoveClock = 0
		} else {
			setSquare(pos, movedPiece, to)
			bumpHalfmoveClock(pos, movedPiece)
		}
		updateCastlingRights(pos, movedPiece)

	case enum.MoveEnPassant:
		clearSquare(pos, movedPiece, from)
		capturedPawnSquare := to - 8
		if movedPiece == enum.PieceBPawn {
			capturedPawnSquare = to + 8
		}
		outcome.Exploded = true
		outcome.DestroyedSquares = explode(pos, capturedPawnSquare)
		pos.HalfmoveClock = 0

	case enum.MoveCastling:
		clearSquare(pos, movedPiece, from)
		setSquare(pos, movedPiece, to)
		moveCastlingRook(pos, to)
		bumpHalfmoveClock(pos, movedPiece)
		updateCastlingRights(pos, movedPiece)

	case enum.MovePromotion:
		clearSquare(pos, movedPiece, from)
		promoted := promotedPiece(movedPiece, m.PromotionPiece())
		if captured := pos.PieceAt(to); captured != enum.PieceNone {
			outcome.Exploded = true
			outcome.DestroyedSquares = explode(pos, to)
			pos.HalfmoveClock = 0
		} else {
			setSquare(pos, promoted, to)
			pos.HalfmoveClock = 0
		}
		updateCastlingRights(pos, movedPiece)
	}

	setEnPassantTarget(pos, movedPiece, from, to)

	if pos.ActiveColor == enum.ColorBlack {
		pos.FullmoveNumber++
	}
	pos.ActiveColor = enum.Opponent(pos.ActiveColor)

	return outcome
}

// explode clears center (unconditionally, regardless of what stands there)
// and every non-pawn piece in its 3x3 neighborhood, per the atomic capture
// rule. It returns every square it emptied.
func explode(pos *board.Position, center int) []int {
	mask := bitutil.NeighborMask(center)
	var destroyed []int
	for _, sq := range bitutil.Squares(mask) {
		piece := pos.PieceAt(sq)
		if piece == enum.PieceNone {
			continue
		}
		if sq != center && pos.HasPawnAt(sq) {
			continue
		}
		clearSquare(pos, piece, sq)
		destroyed = append(destroyed, sq)
	}
	return destroyed
}

func clearSquare(pos *board.Position, piece enum.Piece, square int) {
	pos.Bitboards[piece] &^= uint64(1) << square
}

func setSquare(pos *board.Position, piece enum.Piece, square int) {
	pos.Bitboards[piece] |= uint64(1) << square
}

func promotedPiece(movedPiece enum.Piece, promo enum.PromotionFlag) enum.Piece {
	base := enum.PieceWKnight
	if movedPiece >= enum.PieceBPawn {
		base = enum.PieceBKnight
	}
	return base + promo
}

func moveCastlingRook(pos *board.Position, kingTo int) {
	switch kingTo {
	case board.SquareG1:
		clearSquare(pos, enum.PieceWRook, board.SquareH1)
		setSquare(pos, enum.PieceWRook, board.SquareF1)
	case board.SquareC1:
		clearSquare(pos, enum.PieceWRook, board.SquareA1)
		setSquare(pos, enum.PieceWRook, board.SquareD1)
	case board.SquareG8:
		clearSquare(pos, enum.PieceBRook, board.SquareH8)
		setSquare(pos, enum.PieceBRook, board.SquareF8)
	case board.SquareC8:
		clearSquare(pos, enum.PieceBRook, board.SquareA8)
		setSquare(pos, enum.PieceBRook, board.SquareD8)
	}
}

func bumpHalfmoveClock(pos *board.Position, movedPiece enum.Piece) {
	if movedPiece == enum.PieceWPawn || movedPiece == enum.PieceBPawn {
		pos.HalfmoveClock = 0
		return
	}
	pos.HalfmoveClock++
}

func setEnPassantTarget(pos *board.Position, movedPiece enum.Piece, from, to int) {
	pos.EPTarget = enum.NoSquare
	if movedPiece != enum.PieceWPawn && movedPiece != enum.PieceBPawn {
		return
	}
	if to-from == 16 {
		pos.EPTarget = from + 8
	} else if from-to == 16 {
		pos.EPTarget = from - 8
	}
}

func updateCastlingRights(pos *board.Position, movedPiece enum.Piece) {
	switch movedPiece {
	case enum.PieceWKing:
		pos.CastlingRights &^= enum.CastlingWhiteShort | enum.CastlingWhiteLong
	case enum.PieceBKing:
		pos.CastlingRights &^= enum.CastlingBlackShort | enum.CastlingBlackLong
	}

	// A rook that moved or was destroyed by an explosion forfeits castling
	// on that side either way; recomputing straight from the corner
	// squares covers both causes without threading explode()'s
	// destroyed-square list through every caller.
	if pos.Bitboards[enum.PieceWRook]&enum.A1 == 0 {
		pos.CastlingRights &^= enum.CastlingWhiteLong
	}
	if pos.Bitboards[enum.PieceWRook]&enum.H1 == 0 {
		pos.CastlingRights &^= enum.CastlingWhiteShort
	}
	if pos.Bitboards[enum.PieceBRook]&enum.A8 == 0 {
		pos.CastlingRights &^= enum.CastlingBlackLong
	}
	if pos.Bitboards[enum.PieceBRook]&enum.H8 == 0 {
		pos.CastlingRights &^= enum.CastlingBlackShort
	}
}
