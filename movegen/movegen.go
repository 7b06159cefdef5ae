// Package movegen generates pseudo-legal and legal moves for atomic chess.
// It is grounded on the teacher's root movegen.go (GenLegalMoves,
// genKingMoves, genPawnMoves, genNormalMoves, genAttacks, GenChecksCounter),
// generalized for two atomic-specific rules that have no orthodox-chess
// counterpart:
//
//   - A king can never capture, since capturing always triggers an
//     explosion that would destroy the capturing king itself. King moves
//     are therefore restricted to empty destination squares.
//   - Adjacent kings cannot check each other. Since a king can never
//     capture, it can never deliver check either; its attack squares are
//     excluded when computing where the opposing king may safely stand.
package movegen

import (
	"github.com/lindwurm-chess/atomchego/apply"
	"github.com/lindwurm-chess/atomchego/attacks"
	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

const (
	rank1 uint64 = 0xFF
	rank2 uint64 = 0xFF00
	rank7 uint64 = 0xFF000000000000
	rank8 uint64 = 0xFF00000000000000
)

// castlingPath is the set of squares (other than the king's own) that must
// be empty for the king to castle, indexed by bit position of the
// enum.CastlingWhiteShort..CastlingBlackLong flag.
var castlingPath = [4]uint64{
	enum.F1 | enum.G1,
	enum.B1 | enum.C1 | enum.D1,
	enum.F8 | enum.G8,
	enum.B8 | enum.C8 | enum.D8,
}

// castlingAttackPath is the set of squares (the king's own square included)
// that must not be attacked for the king to castle through them.
var castlingAttackPath = [4]uint64{
	enum.E1 | enum.F1 | enum.G1,
	enum.E1 | enum.D1 | enum.C1,
	enum.E8 | enum.F8 | enum.G8,
	enum.E8 | enum.D8 | enum.C8,
}

// PseudoLegal generates every pseudo-legal move for the position's active
// color: it does not verify that the mover's own king survives the move.
func PseudoLegal(pos board.Position) board.MoveList {
	var list board.MoveList
	genKingMoves(pos, &list)
	genPawnMoves(pos, &list)
	genNormalMoves(pos, &list)
	return list
}

// Legal generates every legal move for the position's active color: a
// pseudo-legal move survives only if, after being applied, the mover's own
// king is either gone (a losing but legal self-detonation) or not attacked.
func Legal(pos board.Position) board.MoveList {
	var legal board.MoveList
	mover := pos.ActiveColor

	pseudo := PseudoLegal(pos)
	for _, m := range pseudo.Slice() {
		next := pos
		apply.MakeMove(&next, m)
		if kingIsSafe(next, mover) {
			legal.Push(m)
		}
	}
	return legal
}

// kingIsSafe reports whether color's king, in position p, is either absent
// or not attacked by the opponent (adjacent opposing kings excepted, since
// a king can never deliver check).
func kingIsSafe(p board.Position, color enum.Color) bool {
	king := p.KingSquare(color)
	if king == -1 {
		return true
	}
	return AttackedSquares(p, enum.Opponent(color))&(uint64(1)<<king) == 0
}

// ChecksCounter returns the number of color's pieces currently giving check
// to the opposing king. A position with more than one checker can only be
// escaped by a king move (or, in atomic chess, by an explosion that removes
// every checker at once), matching the teacher's GenChecksCounter contract.
func ChecksCounter(p board.Position, color enum.Color) int {
	king := p.KingSquare(enum.Opponent(color))
	if king == -1 {
		return 0
	}

	occupancy := p.Occupancy()
	cnt := 0

	if attacks.Pawn(enum.Opponent(color), king)&p.Bitboards[pawnOf(color)] != 0 {
		cnt++
	}
	if attacks.Knight(king)&p.Bitboards[knightOf(color)] != 0 {
		cnt++
	}
	if attacks.Bishop(king, occupancy)&p.Bitboards[bishopOf(color)] != 0 {
		cnt++
	}
	if attacks.Rook(king, occupancy)&p.Bitboards[rookOf(color)] != 0 {
		cnt++
	}
	if attacks.Queen(king, occupancy)&p.Bitboards[queenOf(color)] != 0 {
		cnt++
	}
	// A king never delivers check: two kings may stand adjacent safely.

	return cnt
}

// AttackedSquares returns every square color attacks, excluding the squares
// attacked solely by color's king (a king cannot capture, so it can never
// make another square unsafe for the opposing king).
func AttackedSquares(p board.Position, color enum.Color) uint64 {
	occupancy := p.Occupancy()
	var out uint64

	out |= attacks.PawnsBulk(p.Bitboards[pawnOf(color)], color)
	out |= attacks.KnightsBulk(p.Bitboards[knightOf(color)])

	bishops := p.Bitboards[bishopOf(color)]
	for bishops > 0 {
		sq := bitutil.PopLSB(&bishops)
		out |= attacks.Bishop(sq, occupancy)
	}
	rooks := p.Bitboards[rookOf(color)]
	for rooks > 0 {
		sq := bitutil.PopLSB(&rooks)
		out |= attacks.Rook(sq, occupancy)
	}
	queens := p.Bitboards[queenOf(color)]
	for queens > 0 {
		sq := bitutil.PopLSB(&queens)
		out |= attacks.Queen(sq, occupancy)
	}

	return out
}

func genKingMoves(p board.Position, l *board.MoveList) {
	c := p.ActiveColor
	kingBB := p.Bitboards[kingOf(c)]
	if kingBB == 0 {
		return
	}
	king := bitutil.PopLSB(&kingBB)

	// Exclude the king itself from the occupancy used to compute the
	// opponent's attacks, otherwise a slider's ray would stop one square
	// short and falsely "protect" a square the king could not really flee
	// to.
	withoutKing := p
	withoutKing.Bitboards[kingOf(c)] = 0
	attacked := AttackedSquares(withoutKing, enum.Opponent(c))

	empty := ^p.Occupancy()
	// A king can never capture (capturing always explodes the capturing
	// piece too), so its destinations are restricted to empty squares.
	dests := attacks.King(king) & empty & ^attacked
	for dests > 0 {
		l.Push(board.NewMove(king, bitutil.PopLSB(&dests), enum.MoveNormal))
	}

	if c == enum.ColorWhite {
		if canCastle(p, 0, attacked) && p.Bitboards[enum.PieceWRook]&enum.H1 != 0 {
			l.Push(board.NewCastleMove(king, board.SquareG1))
		}
		if canCastle(p, 1, attacked) && p.Bitboards[enum.PieceWRook]&enum.A1 != 0 {
			l.Push(board.NewCastleMove(king, board.SquareC1))
		}
	} else {
		if canCastle(p, 2, attacked) && p.Bitboards[enum.PieceBRook]&enum.H8 != 0 {
			l.Push(board.NewCastleMove(king, board.SquareG8))
		}
		if canCastle(p, 3, attacked) && p.Bitboards[enum.PieceBRook]&enum.A8 != 0 {
			l.Push(board.NewCastleMove(king, board.SquareC8))
		}
	}
}

var castlingFlags = [4]enum.CastlingFlag{
	enum.CastlingWhiteShort, enum.CastlingWhiteLong,
	enum.CastlingBlackShort, enum.CastlingBlackLong,
}

func canCastle(p board.Position, index int, attacked uint64) bool {
	return p.CastlingRights&castlingFlags[index] != 0 &&
		attacked&castlingAttackPath[index] == 0 &&
		p.Occupancy()&castlingPath[index] == 0
}

func genPawnMoves(p board.Position, l *board.MoveList) {
	c := p.ActiveColor
	occupancy := p.Occupancy()
	enemies := p.ColorBitboard(enum.Opponent(c))
	pawns := p.Bitboards[pawnOf(c)]

	ep := uint64(0)
	if p.EPTarget != enum.NoSquare {
		ep = uint64(1) << p.EPTarget
	}

	dir, initRank, promoRank := 8, rank2, rank8
	if c == enum.ColorBlack {
		dir, initRank, promoRank = -8, rank7, rank1
	}

	for pawns > 0 {
		pawn := bitutil.PopLSB(&pawns)

		fwd := pawn + dir
		fwdBB := uint64(1) << fwd
		if fwdBB&occupancy == 0 {
			pushPawnMove(l, pawn, fwd, promoRank)

			dblFwd := pawn + 2*dir
			if (uint64(1)<<pawn)&initRank != 0 && (uint64(1)<<dblFwd)&occupancy == 0 {
				l.Push(board.NewMove(pawn, dblFwd, enum.MoveNormal))
			}
		}

		targets := attacks.Pawn(c, pawn) & (enemies | ep)
		for targets > 0 {
			to := bitutil.PopLSB(&targets)
			switch {
			case (uint64(1)<<to)&promoRank != 0:
				pushPromotions(l, pawn, to)
			case (uint64(1)<<to)&ep != 0:
				l.Push(board.NewEnPassantMove(pawn, to))
			default:
				l.Push(board.NewMove(pawn, to, enum.MoveNormal))
			}
		}
	}
}

func pushPawnMove(l *board.MoveList, from, to int, promoRank uint64) {
	if (uint64(1)<<to)&promoRank != 0 {
		pushPromotions(l, from, to)
		return
	}
	l.Push(board.NewMove(from, to, enum.MoveNormal))
}

func pushPromotions(l *board.MoveList, from, to int) {
	l.Push(board.NewPromotionMove(from, to, enum.PromotionKnight))
	l.Push(board.NewPromotionMove(from, to, enum.PromotionBishop))
	l.Push(board.NewPromotionMove(from, to, enum.PromotionRook))
	l.Push(board.NewPromotionMove(from, to, enum.PromotionQueen))
}

// genNormalMoves appends pseudo-legal knight, bishop, rook and queen moves.
func genNormalMoves(p board.Position, l *board.MoveList) {
	c := p.ActiveColor
	allies := p.ColorBitboard(c)
	occupancy := p.Occupancy()

	pieces := [4]enum.Piece{knightOf(c), bishopOf(c), rookOf(c), queenOf(c)}
	for _, piece := range pieces {
		bb := p.Bitboards[piece]
		for bb > 0 {
			from := bitutil.PopLSB(&bb)

			var dests uint64
			switch piece {
			case enum.PieceWKnight, enum.PieceBKnight:
				dests = attacks.Knight(from)
			case enum.PieceWBishop, enum.PieceBBishop:
				dests = attacks.Bishop(from, occupancy)
			case enum.PieceWRook, enum.PieceBRook:
				dests = attacks.Rook(from, occupancy)
			case enum.PieceWQueen, enum.PieceBQueen:
				dests = attacks.Queen(from, occupancy)
			}

			dests &= ^allies
			for dests > 0 {
				l.Push(board.NewMove(from, bitutil.PopLSB(&dests), enum.MoveNormal))
			}
		}
	}
}

func pawnOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWPawn
	}
	return enum.PieceBPawn
}
func knightOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWKnight
	}
	return enum.PieceBKnight
}
func bishopOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWBishop
	}
	return enum.PieceBBishop
}
func rookOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWRook
	}
	return enum.PieceBRook
}
func queenOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWQueen
	}
	return enum.PieceBQueen
}
func kingOf(c enum.Color) enum.Piece {
	if c == enum.ColorWhite {
		return enum.PieceWKing
	}
	return enum.PieceBKing
}
