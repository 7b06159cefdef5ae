package board

import (
	"testing"

	"github.com/lindwurm-chess/atomchego/enum"
)

func TestMain(m *testing.M) {
	InitZobristKeys()
	m.Run()
}

func TestHashIsStableAcrossRepeatedCalls(t *testing.T) {
	pos := NewStartingPosition()
	if pos.Hash() != pos.Hash() {
		t.Fatalf("Hash() should be deterministic for an unchanged position")
	}
}

func TestHashChangesWithActiveColor(t *testing.T) {
	white := NewStartingPosition()
	black := white
	black.ActiveColor = enum.ColorBlack

	if white.Hash() == black.Hash() {
		t.Fatalf("positions differing only in the side to move should hash differently")
	}
}

func TestHashChangesWithCastlingRights(t *testing.T) {
	full := NewStartingPosition()
	restricted := full
	restricted.CastlingRights &^= enum.CastlingWhiteShort

	if full.Hash() == restricted.Hash() {
		t.Fatalf("positions differing only in castling rights should hash differently")
	}
}

func TestHashChangesWithEnPassantTarget(t *testing.T) {
	withoutEP := NewStartingPosition()
	withEP := withoutEP
	withEP.EPTarget = enum.SE3

	if withoutEP.Hash() == withEP.Hash() {
		t.Fatalf("positions differing only in the en passant target should hash differently")
	}
}

func TestHashChangesWhenAPieceMoves(t *testing.T) {
	before := NewStartingPosition()
	after := before
	after.Bitboards[enum.PieceWPawn] &^= enum.E2
	after.Bitboards[enum.PieceWPawn] |= enum.E4

	if before.Hash() == after.Hash() {
		t.Fatalf("moving a piece should change the hash")
	}
}
