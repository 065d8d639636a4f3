package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chess-engine/engine"

	"github.com/dylhunn/dragontoothmg"
)

// uciLoop speaks enough of the UCI protocol for GUIs and test harnesses:
// position setup, fixed-depth search, static eval. There is no clock handling;
// go always searches to a fixed depth.
func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name matmax 0.1")
			fmt.Println("id author matmax")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		case "quit":
			return
		case "eval":
			fmt.Println("info string static eval", engine.Evaluate(&board))
		case "go":
			runGo(&board, tokens[1:])
		case "position":
			newBoard, err := parsePositionCommand(tokens[1:])
			if err != nil {
				fmt.Println("info string", err)
				continue
			}
			board = newBoard
		default:
			fmt.Println("info string Unknown command:", line)
		}
	}
}

func runGo(board *dragontoothmg.Board, args []string) {
	depth := engine.DefaultDepth
	for i := 0; i < len(args); i++ {
		if strings.ToLower(args[i]) != "depth" {
			continue
		}
		if i+1 >= len(args) {
			fmt.Println("info string Malformed go command option depth")
			return
		}
		parsed, err := strconv.Atoi(args[i+1])
		if err != nil || parsed < 1 {
			fmt.Println("info string Malformed go command option depth")
			return
		}
		depth = engine.Min(parsed, engine.MaxDepth)
		i++
	}

	result := engine.SelectBest(board, depth)
	if !result.HasMove() {
		// Null move: the position is already checkmate or stalemate.
		fmt.Println("bestmove 0000")
		return
	}
	score := result.Score
	if !board.Wtomove {
		score = -score
	}
	fmt.Println("info depth", depth, "score", engine.FormatScore(score, depth), "pv", result.BestMove.String())
	fmt.Println("bestmove", result.BestMove.String())
}

func parsePositionCommand(args []string) (dragontoothmg.Board, error) {
	var board dragontoothmg.Board
	if len(args) == 0 {
		return board, fmt.Errorf("Malformed position command")
	}

	movesAt := len(args)
	for i, arg := range args {
		if strings.ToLower(arg) == "moves" {
			movesAt = i
			break
		}
	}

	switch strings.ToLower(args[0]) {
	case "startpos":
		board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	case "fen":
		fenstr := strings.Join(args[1:movesAt], " ")
		parsed, err := engine.ParsePosition(fenstr)
		if err != nil {
			return board, fmt.Errorf("Invalid fen position: %v", err)
		}
		board = parsed
	default:
		return board, fmt.Errorf("Invalid position subcommand")
	}

	if movesAt < len(args) {
		for _, moveStr := range args[movesAt+1:] {
			move, ok := engine.FindMove(&board, strings.ToLower(moveStr))
			if !ok {
				return board, fmt.Errorf("Move %s not found for position %s", moveStr, board.ToFen())
			}
			board.Apply(move)
		}
	}
	return board, nil
}
