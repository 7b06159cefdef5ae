// Package notation converts moves to and from long algebraic notation
// (UCI), grounded on the teacher's uci.go Move2UCI.
package notation

import (
	"strings"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

// UCI converts a move into long algebraic notation. Examples: e2e4, e7e5,
// e1g1 (white short castling), e7e8q (promotion to queen).
func UCI(m board.Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(enum.Square2String[m.From()])
	b.WriteString(enum.Square2String[m.To()])

	if m.Type() == enum.MovePromotion {
		switch m.PromotionPiece() {
		case enum.PromotionKnight:
			b.WriteByte('n')
		case enum.PromotionBishop:
			b.WriteByte('b')
		case enum.PromotionRook:
			b.WriteByte('r')
		case enum.PromotionQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}

// FromUCI parses a long algebraic notation string into a From/To square
// pair, matching it against legalMoves to recover the exact encoded move
// (including its promotion piece and move-type tag, neither of which the
// bare UCI string determines on its own for a quiet-looking destination
// square that happens to also be a castle or en passant square).
func FromUCI(uci string, legalMoves board.MoveList) (board.Move, bool) {
	if len(uci) < 4 {
		return board.NoMove, false
	}
	from := squareFromLetters(uci[0], uci[1])
	to := squareFromLetters(uci[2], uci[3])

	idx := legalMoves.Find(from, to)
	if idx == -1 {
		return board.NoMove, false
	}
	m := legalMoves.Moves[idx]

	if len(uci) == 5 && m.IsPromotion() {
		promo := promotionFromLetter(uci[4])
		m = board.NewPromotionMove(from, to, promo)
	}

	return m, true
}

func squareFromLetters(file, rank byte) int {
	return int(rank-'1')*8 + int(file-'a')
}

func promotionFromLetter(c byte) enum.PromotionFlag {
	switch c {
	case 'n':
		return enum.PromotionKnight
	case 'b':
		return enum.PromotionBishop
	case 'r':
		return enum.PromotionRook
	default:
		return enum.PromotionQueen
	}
}
