package enum

import "testing"

func TestOpponentFlipsColor(t *testing.T) {
	if Opponent(ColorWhite) != ColorBlack {
		t.Fatalf("Opponent(White) should be Black")
	}
	if Opponent(ColorBlack) != ColorWhite {
		t.Fatalf("Opponent(Black) should be White")
	}
}

func TestEvaluationIsConclusive(t *testing.T) {
	if EvalInconclusive.IsConclusive() {
		t.Fatalf("Inconclusive should not be conclusive")
	}
	for _, e := range []Evaluation{EvalDraw, EvalWinWhite, EvalWinBlack} {
		if !e.IsConclusive() {
			t.Fatalf("%v should be conclusive", e)
		}
	}
}

func TestEvaluationWinner(t *testing.T) {
	if c, ok := EvalWinWhite.Winner(); !ok || c != ColorWhite {
		t.Fatalf("WinWhite.Winner() = (%v, %v), want (White, true)", c, ok)
	}
	if c, ok := EvalWinBlack.Winner(); !ok || c != ColorBlack {
		t.Fatalf("WinBlack.Winner() = (%v, %v), want (Black, true)", c, ok)
	}
	if _, ok := EvalDraw.Winner(); ok {
		t.Fatalf("Draw.Winner() should report no winner")
	}
	if _, ok := EvalInconclusive.Winner(); ok {
		t.Fatalf("Inconclusive.Winner() should report no winner")
	}
}

func TestSquare2StringCoversAllSixtyFourSquares(t *testing.T) {
	if len(Square2String) != 64 {
		t.Fatalf("len(Square2String) = %d, want 64", len(Square2String))
	}
	if Square2String[SA1] != "a1" || Square2String[SH8] != "h8" {
		t.Fatalf("Square2String does not line up with the square constants")
	}
}

func TestSquareBitboardsLineUpWithSquareIndices(t *testing.T) {
	if A1 != 1<<SA1 {
		t.Fatalf("A1 bitboard does not correspond to SA1's index")
	}
	if H8 != 1<<SH8 {
		t.Fatalf("H8 bitboard does not correspond to SH8's index")
	}
}
