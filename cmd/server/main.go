package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chess-engine/engine"

	"github.com/dylhunn/dragontoothmg"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type analyzeRequest struct {
	Fen   string `json:"fen"`
	Depth int    `json:"depth"`
}

type moveScoreDTO struct {
	Move  string `json:"move"`
	Score int32  `json:"score"`
	Mate  bool   `json:"mate"`
}

type bestMoveResponse struct {
	Move    string `json:"move"`
	Score   int32  `json:"score"`
	Mate    bool   `json:"mate"`
	Outcome string `json:"outcome"`
	Depth   int    `json:"depth"`
}

type analyzeResponse struct {
	Fen     string         `json:"fen"`
	Depth   int            `json:"depth"`
	Outcome string         `json:"outcome"`
	Lines   []moveScoreDTO `json:"lines"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	r.Post("/api/bestmove", handleBestMove)
	r.Post("/api/analyze", handleAnalyze)
	r.Get("/ws", serveWS)

	server := &http.Server{
		Addr:    *addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("[server] analysis server listening on", *addr)
	select {
	case <-sigCtx.Done():
		log.Printf("[server] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			log.Printf("[server] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[server] graceful shutdown failed: %v", err)
	}
}

func handleBestMove(w http.ResponseWriter, r *http.Request) {
	req, board, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bestMove(board, req.Depth))
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, board, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analyze(req.Fen, board, req.Depth))
}

// serveWS answers one analysis request per received message, on a single
// connection. Malformed frames get an error payload instead of a close.
func serveWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req analyzeRequest
		if err := json.Unmarshal(message, &req); err != nil {
			_ = conn.WriteJSON(map[string]string{"error": "invalid payload"})
			continue
		}
		board, err := engine.ParsePosition(req.Fen)
		if err != nil {
			_ = conn.WriteJSON(map[string]string{"error": err.Error()})
			continue
		}
		if err := conn.WriteJSON(analyze(req.Fen, &board, req.Depth)); err != nil {
			return
		}
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (analyzeRequest, *dragontoothmg.Board, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return req, nil, false
	}
	board, err := engine.ParsePosition(req.Fen)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return req, nil, false
	}
	return req, &board, true
}

func bestMove(board *dragontoothmg.Board, depth int) bestMoveResponse {
	depth = clampDepth(depth)
	result := engine.SelectBest(board, depth)
	resp := bestMoveResponse{
		Outcome: engine.GameOutcome(board).String(),
		Depth:   depth,
	}
	if result.HasMove() {
		resp.Move = result.BestMove.String()
		resp.Score = result.Score
		resp.Mate = engine.IsMateScore(result.Score)
	}
	return resp
}

func analyze(fen string, board *dragontoothmg.Board, depth int) analyzeResponse {
	depth = clampDepth(depth)
	lines := engine.AnalyzeRoot(board, depth)
	dtos := make([]moveScoreDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, moveScoreDTO{
			Move:  line.Move.String(),
			Score: line.Score,
			Mate:  engine.IsMateScore(line.Score),
		})
	}
	return analyzeResponse{
		Fen:     fen,
		Depth:   depth,
		Outcome: engine.GameOutcome(board).String(),
		Lines:   dtos,
	}
}

func clampDepth(depth int) int {
	if depth < 1 {
		return engine.DefaultDepth
	}
	return engine.Min(depth, engine.MaxDepth)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
