package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	AbandonGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)

	OptimalMove(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	CreateGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error)
	AbandonGame(ctx context.Context, id string) error
}

type advisorService interface {
	SuggestMove(board tictactoe.Board) (*service.Suggestion, error)
}

type createGameRequest struct {
	Mark tictactoe.Mark `json:"mark"`
}

type optimalMoveRequest struct {
	Board tictactoe.Board `json:"board"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger

	gameService    gameService
	advisorService advisorService
}

func NewHandlers(logger *slog.Logger, gameService gameService, advisorService advisorService) Handlers {
	return &handlers{
		logger:         logger.With("component", "handlers"),
		gameService:    gameService,
		advisorService: advisorService,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	// an empty body lets the server pick the mark
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.gameService.CreateGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameService.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) AbandonGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameService.AbandonGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var move tictactoe.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.gameService.MakeTurn(r.Context(), r.PathValue("id"), move)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

// OptimalMove - answers for any posted board without touching storage.
// JSON null cells decode as empty.
func (that *handlers) OptimalMove(w http.ResponseWriter, r *http.Request) {
	var req optimalMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	suggestion, err := that.advisorService.SuggestMove(req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, suggestion)
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	var status int

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, tictactoe.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidMark),
		errors.Is(err, apperror.ErrUnreachableBoard):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrConcurrentUpdate):
		status = http.StatusConflict
	default:
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
