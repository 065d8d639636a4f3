package engine

import "testing"

func TestMinMaxAbs(t *testing.T) {
	if got := Min(3, 5); got != 3 {
		t.Fatalf("Min(3,5) = %d", got)
	}
	if got := Max(int32(-2), int32(7)); got != 7 {
		t.Fatalf("Max(-2,7) = %d", got)
	}
	if got := Abs(int32(-41)); got != 41 {
		t.Fatalf("Abs(-41) = %d", got)
	}
	if got := Abs(int32(41)); got != 41 {
		t.Fatalf("Abs(41) = %d", got)
	}
}

func TestIsMateScore(t *testing.T) {
	if IsMateScore(39) || IsMateScore(-39) {
		t.Fatalf("material scores must not read as mates")
	}
	if !IsMateScore(InfScore) || !IsMateScore(-(InfScore + 3)) {
		t.Fatalf("mate sentinel scores must read as mates")
	}
}

func TestFormatScore(t *testing.T) {
	cases := []struct {
		score int32
		depth int
		want  string
	}{
		{5, 3, "cp 5"},
		{-2, 3, "cp -2"},
		{InfScore + 2, 3, "mate 1"}, // mate on the next move
		{-(InfScore + 2), 3, "mate -1"},
		{InfScore, 3, "mate 2"}, // mate three plies out
	}
	for _, tc := range cases {
		if got := FormatScore(tc.score, tc.depth); got != tc.want {
			t.Fatalf("FormatScore(%d, %d) = %q, want %q", tc.score, tc.depth, got, tc.want)
		}
	}
}
