// Package fen implements conversions between Forsyth-Edwards Notation
// strings and board.Position values. fen expects the passed FEN strings
// to be valid and may panic if they are not.
package fen

import (
	"strconv"
	"strings"

	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

// ToBitboardArray converts the first part of a Forsyth-Edwards Notation
// string into an array of bitboards.
func ToBitboardArray(piecePlacementData string) [12]uint64 {
	var bitboards [12]uint64
	squareIndex := 56

	// Piece placement data describes each rank beginning from the eigth.
	for i := 0; i < len(piecePlacementData); i++ {
		char := piecePlacementData[i]

		if char == '/' { // Rank separator.
			squareIndex -= 16
		} else if char >= '1' && char <= '8' { // Number of consecutive empty squares.
			squareIndex += int(char - '0')
		} else { // There is a piece on a square.
			bitboards[pieceFromSymbol(char)] |= uint64(1) << squareIndex
			squareIndex++
		}
	}

	return bitboards
}

func pieceFromSymbol(char byte) enum.Piece {
	switch char {
	case 'P':
		return enum.PieceWPawn
	case 'N':
		return enum.PieceWKnight
	case 'B':
		return enum.PieceWBishop
	case 'R':
		return enum.PieceWRook
	case 'Q':
		return enum.PieceWQueen
	case 'K':
		return enum.PieceWKing
	case 'p':
		return enum.PieceBPawn
	case 'n':
		return enum.PieceBKnight
	case 'b':
		return enum.PieceBBishop
	case 'r':
		return enum.PieceBRook
	case 'q':
		return enum.PieceBQueen
	case 'k':
		return enum.PieceBKing
	}
	panic("fen: unknown piece symbol " + strconv.QuoteRune(rune(char)))
}

// FromBitboardArray converts the array of bitboards into the first part of
// a Forsyth-Edwards Notation string.
func FromBitboardArray(bitboards [12]uint64) string {
	var placement strings.Builder
	placement.Grow(20)

	var squares [64]byte
	for piece := enum.PieceWPawn; piece <= enum.PieceBKing; piece++ {
		bb := bitboards[piece]
		for bb > 0 {
			squares[bitutil.PopLSB(&bb)] = enum.PieceSymbols[piece]
		}
	}

	var emptySquares byte
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			char := squares[8*rank+file]

			if char == 0 { // Empty square.
				emptySquares++
			} else { // Piece on square.
				if emptySquares > 0 {
					placement.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				placement.WriteByte(char)
			}

			squareIndex := 8*rank + file
			if (squareIndex+1)%8 == 0 {
				if emptySquares > 0 {
					placement.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				if squareIndex != 7 {
					placement.WriteByte('/')
				}
			}
		}
	}

	return placement.String()
}

// squareFromString parses an algebraic square such as "e3", or returns
// enum.NoSquare for "-".
func squareFromString(str string) int {
	if str[0] == '-' {
		return enum.NoSquare
	}
	var file int
	switch str[0] {
	case 'b':
		file = 1
	case 'c':
		file = 2
	case 'd':
		file = 3
	case 'e':
		file = 4
	case 'f':
		file = 5
	case 'g':
		file = 6
	case 'h':
		file = 7
	}
	return file + (int(str[1]-'0')-1)*8
}

// Parse parses the given FEN string into a Position. It is the caller's
// responsibility to supply a valid FEN string.
func Parse(fenStr string) board.Position {
	fields := strings.SplitN(fenStr, " ", 6)

	var p board.Position
	p.Bitboards = ToBitboardArray(fields[0])

	if len(fields) > 1 && fields[1] == "b" {
		p.ActiveColor = enum.ColorBlack
	}

	if len(fields) > 2 {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= enum.CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= enum.CastlingWhiteLong
			case 'k':
				p.CastlingRights |= enum.CastlingBlackShort
			case 'q':
				p.CastlingRights |= enum.CastlingBlackLong
			}
		}
	}

	p.EPTarget = enum.NoSquare
	if len(fields) > 3 {
		p.EPTarget = squareFromString(fields[3])
	}

	p.HalfmoveClock = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			panic("fen: cannot parse halfmove clock: " + err.Error())
		}
		p.HalfmoveClock = n
	}

	p.FullmoveNumber = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			panic("fen: cannot parse fullmove number: " + err.Error())
		}
		p.FullmoveNumber = n
	}

	return p
}

// Serialize serializes a Position into a FEN string.
func Serialize(p board.Position) string {
	var fenStr strings.Builder
	fenStr.Grow(64)

	fenStr.WriteString(FromBitboardArray(p.Bitboards))

	if p.ActiveColor == enum.ColorWhite {
		fenStr.WriteString(" w ")
	} else {
		fenStr.WriteString(" b ")
	}

	wrote := false
	if p.CastlingRights&enum.CastlingWhiteShort != 0 {
		fenStr.WriteByte('K')
		wrote = true
	}
	if p.CastlingRights&enum.CastlingWhiteLong != 0 {
		fenStr.WriteByte('Q')
		wrote = true
	}
	if p.CastlingRights&enum.CastlingBlackShort != 0 {
		fenStr.WriteByte('k')
		wrote = true
	}
	if p.CastlingRights&enum.CastlingBlackLong != 0 {
		fenStr.WriteByte('q')
		wrote = true
	}
	if !wrote {
		fenStr.WriteByte('-')
	}
	fenStr.WriteByte(' ')

	if p.EPTarget == enum.NoSquare {
		fenStr.WriteString("- ")
	} else {
		fenStr.WriteString(enum.Square2String[p.EPTarget])
		fenStr.WriteByte(' ')
	}

	fenStr.WriteString(strconv.Itoa(p.HalfmoveClock))
	fenStr.WriteByte(' ')
	fenStr.WriteString(strconv.Itoa(p.FullmoveNumber))

	return fenStr.String()
}
