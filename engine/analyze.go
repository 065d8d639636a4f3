package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// MoveScore is one root move with its exact search value.
type MoveScore struct {
	Move  dragontoothmg.Move
	Score int32
}

// AnalyzeRoot searches every legal root move with a full window and returns
// the list sorted best-first for the side to move. Full windows keep the
// per-move scores exact rather than bounds, at the cost of the pruning a
// shared window would give; the list is empty for terminal positions.
func AnalyzeRoot(b *dragontoothmg.Board, depth int) []MoveScore {
	maximizing := b.Wtomove
	legalMoves := b.GenerateLegalMoves()
	lines := make([]MoveScore, 0, len(legalMoves))

	for _, move := range legalMoves {
		unapply := b.Apply(move)
		score := Search(b, depth-1, -InfScore, InfScore, !maximizing)
		unapply()
		lines = append(lines, MoveScore{Move: move, Score: score})
	}

	slices.SortStableFunc(lines, func(x, y MoveScore) bool {
		if maximizing {
			return x.Score > y.Score
		}
		return x.Score < y.Score
	})
	return lines
}
