package notation

import (
	"testing"

	"github.com/lindwurm-chess/atomchego/board"
	"github.com/lindwurm-chess/atomchego/enum"
)

func TestUCIQuietMove(t *testing.T) {
	m := board.NewMove(enum.SE2, enum.SE4, enum.MoveNormal)
	if got := UCI(m); got != "e2e4" {
		t.Fatalf("UCI(e2e4) = %q, want e2e4", got)
	}
}

func TestUCIPromotion(t *testing.T) {
	m := board.NewPromotionMove(enum.SE7, enum.SE8, enum.PromotionQueen)
	if got := UCI(m); got != "e7e8q" {
		t.Fatalf("UCI(promotion) = %q, want e7e8q", got)
	}
}

func TestUCICastle(t *testing.T) {
	m := board.NewCastleMove(enum.SE1, enum.SG1)
	if got := UCI(m); got != "e1g1" {
		t.Fatalf("UCI(castle) = %q, want e1g1", got)
	}
}

func TestFromUCIRoundTripsQuietMove(t *testing.T) {
	var legal board.MoveList
	legal.Push(board.NewMove(enum.SE2, enum.SE4, enum.MoveNormal))
	legal.Push(board.NewMove(enum.SD2, enum.SD4, enum.MoveNormal))

	m, ok := FromUCI("e2e4", legal)
	if !ok {
		t.Fatalf("FromUCI(e2e4) did not find a match")
	}
	if m.From() != enum.SE2 || m.To() != enum.SE4 {
		t.Fatalf("FromUCI(e2e4) = %v, want e2e4", m)
	}
}

func TestFromUCIRoundTripsCastle(t *testing.T) {
	var legal board.MoveList
	legal.Push(board.NewCastleMove(enum.SE1, enum.SG1))

	m, ok := FromUCI("e1g1", legal)
	if !ok {
		t.Fatalf("FromUCI(e1g1) did not find a match")
	}
	if !m.IsCastle() {
		t.Fatalf("FromUCI(e1g1) should recover the castling move type")
	}
}

func TestFromUCIRecoversPromotionPiece(t *testing.T) {
	var legal board.MoveList
	legal.Push(board.NewPromotionMove(enum.SE7, enum.SE8, enum.PromotionQueen))

	m, ok := FromUCI("e7e8n", legal)
	if !ok {
		t.Fatalf("FromUCI(e7e8n) did not find a match")
	}
	if m.PromotionPiece() != enum.PromotionKnight {
		t.Fatalf("FromUCI(e7e8n) promotion piece = %v, want knight", m.PromotionPiece())
	}
}

func TestFromUCINotFound(t *testing.T) {
	var legal board.MoveList
	legal.Push(board.NewMove(enum.SE2, enum.SE4, enum.MoveNormal))

	if _, ok := FromUCI("a2a3", legal); ok {
		t.Fatalf("FromUCI(a2a3) should not match an unrelated legal move list")
	}
}

func TestFromUCIRejectsShortInput(t *testing.T) {
	var legal board.MoveList
	if _, ok := FromUCI("e2e", legal); ok {
		t.Fatalf("FromUCI should reject a string shorter than 4 characters")
	}
}
