// Package cli renders a board.Position as a human-readable board diagram,
// a debugging aid for a quick visual sanity check of a position. No other
// package of this module calls it.
package cli

import (
	"strings"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

var pieceSymbols = [12]rune{
	'♙', '♘', '♗', '♖', '♕', '♔',
	'♟', '♞', '♝', '♜', '♛', '♚',
}

// FormatPosition formats a full chess position into a human-readable board
// diagram plus its side-to-move, en passant target, and castling rights.
func FormatPosition(pos board.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := '.'
			for i := 0; i < 12; i++ {
				if square&pos.Bitboards[i] != 0 {
					symbol = pieceSymbols[i]
					break
				}
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")
	if pos.ActiveColor == enum.ColorWhite {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if pos.EPTarget == enum.NoSquare {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(enum.Square2String[pos.EPTarget])
		b.WriteString("\nCastling rights: ")
	}

	if pos.CastlingRights&enum.CastlingWhiteShort != 0 {
		b.WriteByte('K')
	}
	if pos.CastlingRights&enum.CastlingWhiteLong != 0 {
		b.WriteByte('Q')
	}
	if pos.CastlingRights&enum.CastlingBlackShort != 0 {
		b.WriteByte('k')
	}
	if pos.CastlingRights&enum.CastlingBlackLong != 0 {
		b.WriteByte('q')
	}

	return b.String()
}
