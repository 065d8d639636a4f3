package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"chess-engine/engine"

	"github.com/dylhunn/dragontoothmg"
)

func main() {
	uciMode := flag.Bool("uci", false, "speak UCI on stdin/stdout instead of playing interactively")
	depth := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	fen := flag.String("fen", dragontoothmg.Startpos, "starting position in FEN")
	playBlack := flag.Bool("black", false, "play the black pieces")
	flag.Parse()

	if *uciMode {
		uciLoop()
		return
	}
	if err := playLoop(*fen, *depth, *playBlack); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// playLoop alternates moves typed in coordinate notation with engine replies
// until the game ends or the player resigns.
func playLoop(fen string, depth int, playBlack bool) error {
	depth = engine.Max(1, engine.Min(depth, engine.MaxDepth))

	board, err := engine.ParsePosition(fen)
	if err != nil {
		return err
	}
	record, err := newGameRecord(fen)
	if err != nil {
		return err
	}

	humanWhite := !playBlack
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(record.Draw())

		outcome := engine.GameOutcome(&board)
		if outcome != engine.Ongoing {
			fmt.Println("game over:", outcome)
			break
		}

		if board.Wtomove == humanWhite {
			move, resigned := promptMove(scanner, &board)
			if resigned {
				record.Resign(humanWhite)
				fmt.Println("you resigned")
				break
			}
			board.Apply(move)
			if err := record.Push(move.String()); err != nil {
				return err
			}
			continue
		}

		result := engine.SelectBest(&board, depth)
		if !result.HasMove() {
			fmt.Println("game over:", engine.GameOutcome(&board))
			break
		}
		engineScore := result.Score
		if humanWhite {
			engineScore = -engineScore
		}
		fmt.Printf("engine plays %s (%s)\n", result.BestMove.String(), engine.FormatScore(engineScore, depth))
		board.Apply(result.BestMove)
		if err := record.Push(result.BestMove.String()); err != nil {
			return err
		}
	}

	fmt.Println(record.PGN())
	return nil
}

// promptMove reads moves until one is legal in the position, or the player
// types resign/quit. Bad input never touches the board.
func promptMove(scanner *bufio.Scanner, board *dragontoothmg.Board) (dragontoothmg.Move, bool) {
	for {
		if board.Wtomove {
			fmt.Print("white> ")
		} else {
			fmt.Print("black> ")
		}
		if !scanner.Scan() {
			return engine.NoMove, true
		}
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		switch input {
		case "":
			continue
		case "resign", "quit":
			return engine.NoMove, true
		case "moves":
			printLegalMoves(board)
			continue
		}
		move, ok := engine.FindMove(board, input)
		if !ok {
			fmt.Println("illegal move:", input, "(type a move like e2e4, or moves / resign)")
			continue
		}
		return move, false
	}
}

func printLegalMoves(board *dragontoothmg.Board) {
	moves := board.GenerateLegalMoves()
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = mv.String()
	}
	fmt.Println(strings.Join(parts, " "))
}
