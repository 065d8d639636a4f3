package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
//
// InfScore is the mate sentinel. It must exceed any reachable material balance
// (at most 39 pawns of material per side) by a wide margin, so a score whose
// magnitude reaches InfScore always means a forced mate was found, never a
// large material lead. Mate scores are biased by the remaining depth:
// +InfScore+depth when White delivered mate, -InfScore-depth when Black did,
// so a faster mate always outscores a slower one for the mating side.
const (
	InfScore  int32 = 1000000
	DrawScore int32 = 0
)

// DefaultDepth is the search depth the front ends use unless told otherwise.
const DefaultDepth = 3

// MaxDepth caps externally supplied depths to keep the recursion bounded.
const MaxDepth = 32

// NoMove is the zero Move, used where no move exists or applies.
const NoMove dragontoothmg.Move = 0

// SearchResult is the outcome of a root search: the chosen move and its score.
// A zero BestMove means the root had no legal moves at all.
type SearchResult struct {
	BestMove dragontoothmg.Move
	Score    int32
}

// HasMove reports whether the search found any legal move. False means the
// root position is already checkmate or stalemate, not an engine failure.
func (r SearchResult) HasMove() bool {
	return r.BestMove != NoMove
}

// Search returns the fail-soft alpha-beta minimax value of the position at the
// given remaining depth. Scores are from White's perspective; maximizing says
// whether the side to move is White. The board is mutated during traversal but
// is always restored before returning, on every path including cutoffs.
func Search(b *dragontoothmg.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	if depth <= 0 {
		return Evaluate(b)
	}

	legalMoves := b.GenerateLegalMoves()

	// Terminal positions are classified before any recursion.
	if len(legalMoves) == 0 {
		return terminalScore(b, depth)
	}

	if maximizing {
		// White to move: track the running maximum and raise alpha.
		best := -2 * InfScore
		for _, move := range legalMoves {
			unapply := b.Apply(move)
			score := Search(b, depth-1, alpha, beta, false)
			unapply()

			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				// Fail-soft: return the best value seen, not the bound.
				return best
			}
		}
		return best
	}

	// Black to move: symmetric, track the running minimum and lower beta.
	best := 2 * InfScore
	for _, move := range legalMoves {
		unapply := b.Apply(move)
		score := Search(b, depth-1, alpha, beta, true)
		unapply()

		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			return best
		}
	}
	return best
}

// terminalScore scores a position with no legal continuation. Only valid when
// the legal-move list is empty.
func terminalScore(b *dragontoothmg.Board, depth int) int32 {
	if b.OurKingInCheck() {
		if b.Wtomove {
			// White is mated, Black wins.
			return -InfScore - int32(depth)
		}
		return InfScore + int32(depth)
	}
	// Stalemate.
	return DrawScore
}

// SelectBest runs the root search: every legal move is applied, searched at
// depth-1 and taken back, and the move with the best score for the side to
// move is kept. There is no root-level cutoff, since the move itself rather
// than a bound is wanted; alpha and beta still tighten to prune the subtrees.
func SelectBest(b *dragontoothmg.Board, depth int) SearchResult {
	maximizing := b.Wtomove
	alpha := -InfScore
	beta := InfScore

	// Seeded below/above every reachable mate score, so the first legal move
	// always becomes the incumbent even when every line loses.
	bestScore := -2 * InfScore
	if !maximizing {
		bestScore = 2 * InfScore
	}
	bestMove := NoMove

	for _, move := range b.GenerateLegalMoves() {
		unapply := b.Apply(move)
		score := Search(b, depth-1, alpha, beta, !maximizing)
		unapply()

		if maximizing {
			if score > bestScore {
				bestScore, bestMove = score, move
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore, bestMove = score, move
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}

	if bestMove == NoMove {
		// No legal moves: forced game end at the root.
		return SearchResult{BestMove: NoMove, Score: terminalScore(b, depth)}
	}
	return SearchResult{BestMove: bestMove, Score: bestScore}
}
