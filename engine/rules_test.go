package engine

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestGameOutcome(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want Outcome
	}{
		{"start position", dragontoothmg.Startpos, Ongoing},
		{"fools mate", foolsMateFen, BlackWon},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", WhiteWon},
		{"stalemate", stalemateFen, Draw},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := dragontoothmg.ParseFen(tc.fen)
			if got := GameOutcome(&board); got != tc.want {
				t.Fatalf("outcome of %s: got %v, want %v", tc.fen, got, tc.want)
			}
			if terminal := IsTerminal(&board); terminal != (tc.want != Ongoing) {
				t.Fatalf("IsTerminal of %s: got %v", tc.fen, terminal)
			}
		})
	}
}

func TestSideToMove(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if !SideToMove(&board) {
		t.Fatalf("expected White to move in the start position")
	}
	applyMoves(t, &board, "e2e4")
	if SideToMove(&board) {
		t.Fatalf("expected Black to move after e2e4")
	}
}

func TestFindMove(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	before := board.ToFen()

	if _, ok := FindMove(&board, "e2e4"); !ok {
		t.Fatalf("e2e4 should be legal in the start position")
	}
	if _, ok := FindMove(&board, "e2e5"); ok {
		t.Fatalf("e2e5 should be rejected")
	}
	if _, ok := FindMove(&board, "not a move"); ok {
		t.Fatalf("garbage input should be rejected")
	}
	if after := board.ToFen(); after != before {
		t.Fatalf("FindMove mutated the board: %s -> %s", before, after)
	}
}

func TestFindMovePromotion(t *testing.T) {
	board := dragontoothmg.ParseFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	move, ok := FindMove(&board, "a7a8q")
	if !ok {
		t.Fatalf("queen promotion should be legal")
	}
	if move.Promote() != dragontoothmg.Queen {
		t.Fatalf("promotion piece: got %d, want queen", move.Promote())
	}
	if _, ok := FindMove(&board, "a7a8"); ok {
		t.Fatalf("promotion move without a piece should be rejected")
	}
}

func TestParsePosition(t *testing.T) {
	if _, err := ParsePosition(dragontoothmg.Startpos); err != nil {
		t.Fatalf("start position rejected: %v", err)
	}
	bad := []string{
		"",
		"garbage",
		"rnbqkbnr/pppppppp/8/8 w KQkq", // missing fields
		"8/8/8/8/8/8/8/8 w - - 0 1",    // no kings
		"KK6/8/8/8/8/8/8/7k w - - 0 1", // two white kings
	}
	for _, fen := range bad {
		if _, err := ParsePosition(fen); err == nil {
			t.Fatalf("expected error for fen %q", fen)
		}
	}
}

func TestOutcomeStrings(t *testing.T) {
	for outcome, want := range map[Outcome]string{
		WhiteWon: "white",
		BlackWon: "black",
		Draw:     "draw",
		Ongoing:  "ongoing",
	} {
		if got := outcome.String(); !strings.Contains(got, want) {
			t.Fatalf("outcome %d string %q should mention %q", outcome, got, want)
		}
	}
}
