package movegen

import (
	"testing"

	"github.com/lindwurm-chess/atomchego/attacks"
	"github.com/lindwurm-chess/atomchego/enum"
	"github.com/lindwurm-chess/atomchego/fen"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

func TestLegalMovesFromStartingPosition(t *testing.T) {
	pos := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	got := Legal(pos).Count
	if got != 20 {
		t.Fatalf("legal move count from starting position = %d, want 20", got)
	}
}

func TestBishopMovesOnEmptyBoard(t *testing.T) {
	pos := fen.Parse("8/8/8/2b2b2/8/8/8/8 b - - 0 1")
	got := Legal(pos).Count
	if got != 22 {
		t.Fatalf("legal bishop move count = %d, want 22", got)
	}
}

func TestKingCannotCaptureToEscapeCheck(t *testing.T) {
	// White king on e1, black rook gives check from e2, right next to it;
	// taking the checking rook is illegal for the king, since capturing
	// always detonates the king too.
	pos := fen.Parse("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	legal := Legal(pos)
	for _, m := range legal.Slice() {
		if m.To() == enum.SE2 {
			t.Fatalf("the king should never capture the checking rook on e2")
		}
	}
}

func TestAdjacentKingsDoNotCheckEachOther(t *testing.T) {
	// Kings on e1/e2 standing adjacent is legal in atomic chess: neither
	// king can deliver check.
	pos := fen.Parse("8/8/8/8/8/8/4k3/4K3 w - - 0 1")
	if ChecksCounter(pos, pos.ActiveColor^1) > 0 {
		t.Fatalf("adjacent kings should not check one another")
	}
	legal := Legal(pos)
	if legal.Count == 0 {
		t.Fatalf("white should have legal moves despite the adjacent black king")
	}
}

func TestEnPassantIsGeneratedWhenAvailable(t *testing.T) {
	pos := fen.Parse("rnbq1bnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	legal := Legal(pos)

	found := false
	for _, m := range legal.Slice() {
		if m.IsEnPassant() {
			found = true
			if m.To() != pos.EPTarget {
				t.Fatalf("en passant move should land on the EP target square")
			}
		}
	}
	if !found {
		t.Fatalf("expected an en passant capture to be generated")
	}
}

func TestCastlingBlockedByAttackedPath(t *testing.T) {
	// White cannot castle short: f1 is attacked by the bishop on h3.
	pos := fen.Parse("r3k2r/8/8/8/8/7b/8/R3K2R w KQkq - 0 1")
	legal := Legal(pos)

	for _, m := range legal.Slice() {
		if m.IsCastle() && m.To() == pos.KingSquare(pos.ActiveColor)+2 {
			t.Fatalf("short castle should be blocked by the attacked f1 square")
		}
	}
}

func TestPseudoLegalIsSupersetOfLegal(t *testing.T) {
	pos := fen.Parse("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	pseudo := PseudoLegal(pos)
	legal := Legal(pos)
	if legal.Count > pseudo.Count {
		t.Fatalf("legal move count (%d) should never exceed pseudo-legal (%d)", legal.Count, pseudo.Count)
	}
}
