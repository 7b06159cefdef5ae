// Package evaluator decides whether a position is terminal, and if so, who
// won. It is grounded on the teacher's game/game.go (IsInsufficientMaterial,
// IsCheckmate), generalized for an atomic-specific outcome that has no
// orthodox-chess counterpart: a side can win simply by exploding the
// opponent's king (see package apply). The insufficient-material catalog
// keeps KvK, KvKB, and KvKN (applied symmetrically to both colors, unlike
// the reference implementation's one-sided gate) but drops same-colored
// bishops and KvKR, since in atomic chess even a lone pawn can deliver
// checkmate by detonating next to the enemy king.
package evaluator

import (
	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/movegen"
)

// Evaluate returns the position's terminal status, in priority order:
//
//  1. Simple draws: both kings already gone, the fifty-move rule, a
//     threefold repetition (reported by the caller via repetitionFlag,
//     since the evaluator itself has no notion of game history), or
//     insufficient material.
//  2. Simple wins: exactly one side's king has been exploded off the board.
//  3. Checkmate or stalemate, determined from the supplied legal move list
//     and whether the side to move is in check.
//
// Anything else is EvalInconclusive: the game continues. legalMoves must be
// pos's own legal move list (see movegen.Legal); Evaluate does not
// recompute it, since the caller (the MCTS simulator) already generates it
// once per ply and would otherwise pay for it twice.
func Evaluate(pos board.Position, legalMoves board.MoveList, repetitionFlag bool) enum.Evaluation {
	whiteKing := pos.KingSquare(enum.ColorWhite)
	blackKing := pos.KingSquare(enum.ColorBlack)

	if whiteKing == -1 && blackKing == -1 {
		return enum.EvalDraw
	}
	if pos.HalfmoveClock >= 100 {
		return enum.EvalDraw
	}
	if repetitionFlag {
		return enum.EvalDraw
	}
	if isInsufficientMaterial(pos) {
		return enum.EvalDraw
	}

	if whiteKing == -1 {
		return enum.EvalWinBlack
	}
	if blackKing == -1 {
		return enum.EvalWinWhite
	}

	if legalMoves.Count == 0 {
		if movegen.ChecksCounter(pos, enum.Opponent(pos.ActiveColor)) > 0 {
			// The side to move is in check with no legal reply: checkmate.
			return winnerOf(enum.Opponent(pos.ActiveColor))
		}
		return enum.EvalDraw // stalemate
	}

	return enum.EvalInconclusive
}

func winnerOf(c enum.Color) enum.Evaluation {
	if c == enum.ColorWhite {
		return enum.EvalWinWhite
	}
	return enum.EvalWinBlack
}

// isInsufficientMaterial reports whether neither side can realistically
// force a win: no pawns or queens or rooks remain on the board, and the
// combined count of bishops and knights is at most one. This keeps the
// orthodox KvK, KvKB, and KvKN draws (a lone minor cannot force mate
// against a lone king through normal play) while dropping the orthodox
// same-colored-bishops and KvKR cases, since in atomic chess a single
// minor or even a pawn can still deliver checkmate by detonating next to
// the enemy king the moment there is anything left for it to capture.
func isInsufficientMaterial(pos board.Position) bool {
	for _, i := range [...]enum.Piece{
		enum.PieceWPawn, enum.PieceBPawn,
		enum.PieceWRook, enum.PieceBRook,
		enum.PieceWQueen, enum.PieceBQueen,
	} {
		if pos.Bitboards[i] != 0 {
			return false
		}
	}

	minors := bitutil.CountBits(pos.Bitboards[enum.PieceWBishop]) +
		bitutil.CountBits(pos.Bitboards[enum.PieceBBishop]) +
		bitutil.CountBits(pos.Bitboards[enum.PieceWKnight]) +
		bitutil.CountBits(pos.Bitboards[enum.PieceBKnight])

	return minors <= 1
}
