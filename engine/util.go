package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsMateScore reports whether the score encodes a forced mate rather than a
// material balance.
func IsMateScore(score int32) bool {
	return Abs(score) >= InfScore
}

// FormatScore renders a score the way UCI reports it: "cp N" for material
// balances, "mate N" for forced mates. Mate scores carry the remaining depth
// at the mated node, so the distance in moves is recovered from the root
// search depth. The score is taken relative to the side the report is for.
func FormatScore(score int32, depth int) string {
	if !IsMateScore(score) {
		return fmt.Sprintf("cp %d", score)
	}
	pliesToMate := int32(depth) - (Abs(score) - InfScore)
	if pliesToMate < 0 {
		pliesToMate = 0
	}
	mateInN := (pliesToMate + 1) / 2
	if score < 0 {
		mateInN = -mateInN
	}
	return fmt.Sprintf("mate %d", mateInN)
}
