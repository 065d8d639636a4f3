package main

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// gameRecord mirrors the played game in notnil/chess, which the rules library
// lacks: an ASCII board renderer and a PGN writer. It is display-only; the
// dragontoothmg board stays authoritative for legality and search.
type gameRecord struct {
	game *chess.Game
}

func newGameRecord(fen string) (*gameRecord, error) {
	if fen == dragontoothmg.Startpos {
		return &gameRecord{game: chess.NewGame()}, nil
	}
	startPos, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("recording position: %w", err)
	}
	return &gameRecord{game: chess.NewGame(startPos)}, nil
}

// Push appends a move given in coordinate notation.
func (r *gameRecord) Push(uci string) error {
	move, err := chess.UCINotation{}.Decode(r.game.Position(), uci)
	if err != nil {
		return fmt.Errorf("recording move %s: %w", uci, err)
	}
	if err := r.game.Move(move); err != nil {
		return fmt.Errorf("recording move %s: %w", uci, err)
	}
	return nil
}

func (r *gameRecord) Draw() string {
	return r.game.Position().Board().Draw()
}

func (r *gameRecord) Resign(white bool) {
	if white {
		r.game.Resign(chess.White)
	} else {
		r.game.Resign(chess.Black)
	}
}

// PGN renders the moves played so far.
func (r *gameRecord) PGN() string {
	return r.game.String()
}
