// Package enum contains declarations of the plain constants shared by every
// other package: piece and color identifiers, move-type tags, castling
// flags, square indices, and the terminal-evaluation outcomes. Keeping them
// here instead of scattering "magic numbers" across movegen/apply/evaluator
// is the same convention the teacher package used for its own enum package.
package enum

// Piece is an allias type to avoid bothersome conversion between int and Piece.
type Piece = int

const (
	PieceWPawn Piece = iota
	PieceWKnight
	PieceWBishop
	PieceWRook
	PieceWQueen
	PieceWKing
	PieceBPawn
	PieceBKnight
	PieceBBishop
	PieceBRook
	PieceBQueen
	PieceBKing
	// PieceNone marks the absence of a piece on a square.
	PieceNone = -1
)

// Color is an allias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opponent returns the color of the opposing side.
func Opponent(c Color) Color { return 1 ^ c }

// PromotionFlag is an allias type to avoid bothersome conversion between int
// and PromotionFlag.
type PromotionFlag = int

// 00 - knight, 01 - bishop, 10 - rook, 11 - queen.
const (
	PromotionKnight PromotionFlag = iota
	PromotionBishop
	PromotionRook
	PromotionQueen
)

// MoveType is an allias type to avoid bothersome conversion between int and
// MoveType.
type MoveType = int

const (
	// Quiet & capture moves.
	MoveNormal MoveType = iota
	// King & queen castling.
	MoveCastling
	// Knight & Bishop & Rook & Queen promotions.
	MovePromotion
	// Special pawn move.
	MoveEnPassant
)

// CastlingFlag defines the player's rights to perform castlings.
//
//	0 bit: white king can O-O.
//	1 bit: white king can O-O-O.
//	2 bit: black king can O-O.
//	3 bit: black king can O-O-O.
type CastlingFlag = int

const (
	CastlingWhiteShort CastlingFlag = 1
	CastlingWhiteLong  CastlingFlag = 2
	CastlingBlackShort CastlingFlag = 4
	CastlingBlackLong  CastlingFlag = 8
)

// Evaluation is the result of evaluating a board for terminality: the value
// the terminal evaluator (package evaluator) and the MCTS driver (package
// mcts) pass around.
type Evaluation int

const (
	EvalInconclusive Evaluation = iota
	EvalDraw
	EvalWinWhite
	EvalWinBlack
)

// IsConclusive reports whether the evaluation is anything but Inconclusive.
func (e Evaluation) IsConclusive() bool { return e != EvalInconclusive }

// Winner returns the color that won and true, or (_, false) if the
// evaluation is not a decisive win for either side.
func (e Evaluation) Winner() (Color, bool) {
	switch e {
	case EvalWinWhite:
		return ColorWhite, true
	case EvalWinBlack:
		return ColorBlack, true
	default:
		return 0, false
	}
}

func (e Evaluation) String() string {
	switch e {
	case EvalDraw:
		return "0"
	case EvalWinWhite:
		return "White"
	case EvalWinBlack:
		return "Black"
	default:
		return "?"
	}
}

// Each square, used as an index into [64]T lookup tables.
const (
	SA1 int = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// Bitboards of each square. Used to simplify tests and magic-number tables.
const (
	// NoSquare distinguishes the absence of an en passant target.
	NoSquare        = -1
	A1       uint64 = 1 << (iota - 1)
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Square2String maps each board square to its algebraic string representation.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// PieceSymbols maps each piece type to its FEN letter.
var PieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}
