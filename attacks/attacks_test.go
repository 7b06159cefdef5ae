package attacks

import (
	"testing"

	"github.com/lindwurm-chess/atomchego/enum"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestKnightAttacksFromCorner(t *testing.T) {
	got := Knight(enum.SA1)
	want := enum.B3 | enum.C2
	if got != want {
		t.Fatalf("Knight(a1) = %x, want %x", got, want)
	}
}

func TestKingAttacksFromCorner(t *testing.T) {
	got := King(enum.SA1)
	want := enum.A2 | enum.B2 | enum.B1
	if got != want {
		t.Fatalf("King(a1) = %x, want %x", got, want)
	}
}

func TestPawnAttacks(t *testing.T) {
	got := Pawn(enum.ColorWhite, enum.SE4)
	want := enum.D5 | enum.F5
	if got != want {
		t.Fatalf("Pawn(white, e4) = %x, want %x", got, want)
	}

	got = Pawn(enum.ColorBlack, enum.SE4)
	want = enum.D3 | enum.F3
	if got != want {
		t.Fatalf("Pawn(black, e4) = %x, want %x", got, want)
	}
}

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	got := Rook(enum.SA1, 0)
	want := (enum.A2 | enum.A3 | enum.A4 | enum.A5 | enum.A6 | enum.A7 | enum.A8) |
		(enum.B1 | enum.C1 | enum.D1 | enum.E1 | enum.F1 | enum.G1 | enum.H1)
	if got != want {
		t.Fatalf("Rook(a1, empty) = %x, want %x", got, want)
	}
}

func TestBishopAttacksBlockedByOccupancy(t *testing.T) {
	occupancy := enum.C3
	got := Bishop(enum.SA1, occupancy)
	want := enum.B2 | enum.C3
	if got != want {
		t.Fatalf("Bishop(a1, blocked at c3) = %x, want %x", got, want)
	}
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	occupancy := uint64(0)
	got := Queen(enum.SD4, occupancy)
	want := Rook(enum.SD4, occupancy) | Bishop(enum.SD4, occupancy)
	if got != want {
		t.Fatalf("Queen(d4, empty) = %x, want %x", got, want)
	}
}
