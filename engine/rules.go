package engine

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Outcome classifies a position once no legal continuation exists.
type Outcome int8

const (
	Ongoing Outcome = iota
	WhiteWon
	BlackWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "white won by checkmate"
	case BlackWon:
		return "black won by checkmate"
	case Draw:
		return "draw by stalemate"
	default:
		return "ongoing"
	}
}

// IsTerminal reports whether the side to move has no legal continuation.
func IsTerminal(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) == 0
}

// GameOutcome classifies the position: checkmate with the winner identified,
// stalemate, or still ongoing.
func GameOutcome(b *dragontoothmg.Board) Outcome {
	if len(b.GenerateLegalMoves()) > 0 {
		return Ongoing
	}
	if b.OurKingInCheck() {
		if b.Wtomove {
			return BlackWon
		}
		return WhiteWon
	}
	return Draw
}

// SideToMove reports whose turn it is, true for White.
func SideToMove(b *dragontoothmg.Board) bool {
	return b.Wtomove
}

// ParsePosition parses a FEN string with validation. dragontoothmg's own
// parser assumes well-formed input, so the field count and king placement are
// checked here and a parse panic is converted into an error.
func ParsePosition(fen string) (board dragontoothmg.Board, err error) {
	fen = strings.TrimSpace(fen)
	if len(strings.Fields(fen)) != 6 {
		return board, fmt.Errorf("invalid fen %q: want 6 fields", fen)
	}
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("invalid fen %q", fen)
		}
	}()
	board = dragontoothmg.ParseFen(fen)
	if bits.OnesCount64(board.White.Kings) != 1 || bits.OnesCount64(board.Black.Kings) != 1 {
		return board, fmt.Errorf("invalid fen %q: each side needs exactly one king", fen)
	}
	return board, nil
}

// FindMove resolves a coordinate-notation move string ("e2e4", "e7e8q")
// against the legal moves of the position. It first matches the printed form,
// then falls back to parsing the string and matching origin, destination and
// promotion piece. A false result means the input is malformed or illegal
// here; the board is never touched.
func FindMove(b *dragontoothmg.Board, moveStr string) (dragontoothmg.Move, bool) {
	legalMoves := b.GenerateLegalMoves()
	for _, mv := range legalMoves {
		if mv.String() == moveStr {
			return mv, true
		}
	}
	parsed, err := dragontoothmg.ParseMove(moveStr)
	if err != nil {
		return NoMove, false
	}
	for _, mv := range legalMoves {
		if mv.From() == parsed.From() && mv.To() == parsed.To() && mv.Promote() == parsed.Promote() {
			return mv, true
		}
	}
	return NoMove, false
}
