// zobrist.go implements Zobrist hashing so that logically-equal positions
// (same piece placement, side to move, castling rights, and en passant
// target) produce equal hashes, per spec.md §4.1.

package board

import (
	"math/rand/v2"

	"github.com/lindwurm-chess/atomchego/bitutil"
	"github.com/lindwurm-chess/atomchego/enum"
)

// Keys are used to hash each possible position into a unique number. Each
// key is generated randomly and is large enough that the probability of a
// hash collision is negligible.
var (
	pieceKeys    [12][64]uint64
	epKeys       [65]uint64 // index 64 used for enum.NoSquare
	castlingKeys [16]uint64
	colorKey     uint64

	zobristReady bool
)

// InitZobristKeys initializes the pseudo-random keys used by the Zobrist
// hashing scheme. Call this once, as close as possible to program start,
// before calling Position.Hash.
func InitZobristKeys() {
	for i := enum.PieceWPawn; i <= enum.PieceBKing; i++ {
		for square := range 64 {
			pieceKeys[i][square] = rand.Uint64()
		}
	}
	for square := range 65 {
		epKeys[square] = rand.Uint64()
	}
	for i := range 16 {
		castlingKeys[i] = rand.Uint64()
	}
	colorKey = rand.Uint64()
	zobristReady = true
}

// Hash computes the position's 64-bit Zobrist fingerprint from scratch.
// Panics if InitZobristKeys was never called, matching the "must init
// before use" contract the teacher package uses for its attack tables.
func (p *Position) Hash() uint64 {
	if !zobristReady {
		panic("board: InitZobristKeys must be called before Hash")
	}

	var key uint64
	for i := enum.PieceWPawn; i <= enum.PieceBKing; i++ {
		bb := p.Bitboards[i]
		for bb > 0 {
			key ^= pieceKeys[i][bitutil.PopLSB(&bb)]
		}
	}

	epIndex := 64
	if p.EPTarget != enum.NoSquare {
		epIndex = p.EPTarget
	}
	key ^= epKeys[epIndex]

	key ^= castlingKeys[p.CastlingRights]

	if p.ActiveColor == enum.ColorBlack {
		key ^= colorKey
	}

	return key
}
