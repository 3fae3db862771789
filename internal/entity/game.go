package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Tie - stored as the winner of a drawn game.
const Tie tictactoe.Mark = "-"

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a single match between a human and the minimax bot.
type Game struct {
	ID        string          `json:"id"`
	Board     tictactoe.Board `json:"board"`
	Winner    tictactoe.Mark  `json:"winner"`
	Status    string          `json:"status"`
	Turn      tictactoe.Mark  `json:"player_turn"`
	HumanMark tictactoe.Mark  `json:"human_mark"`
	BotMark   tictactoe.Mark  `json:"bot_mark"`
}

func NewGame(id string, humanMark tictactoe.Mark) (*Game, error) {
	botMark, err := Opponent(humanMark)
	if err != nil {
		return nil, err
	}

	board := tictactoe.InitialState()

	return &Game{
		ID:        id,
		Board:     board,
		Turn:      tictactoe.Turn(board),
		Status:    StatusOngoing,
		HumanMark: humanMark,
		BotMark:   botMark,
	}, nil
}

// Opponent - returns the other player's mark.
func Opponent(mark tictactoe.Mark) (tictactoe.Mark, error) {
	switch mark {
	case tictactoe.X:
		return tictactoe.O, nil
	case tictactoe.O:
		return tictactoe.X, nil
	default:
		return tictactoe.Empty, fmt.Errorf("%w: got %q", apperror.ErrInvalidMark, mark)
	}
}

func (that *Game) UpdateGameState() {
	switch winner := tictactoe.Winner(that.Board); {
	// one player wins
	case winner != tictactoe.Empty:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// tie
	case tictactoe.IsTerminal(that.Board):
		that.Winner = Tie
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = tictactoe.Turn(that.Board)
	}
}

func (that *Game) MakeTurn(mark tictactoe.Mark, move tictactoe.Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.ApplyMove(that.Board, move)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// GetRandomMarks - returns the human mark first and the bot mark second.
func GetRandomMarks() (tictactoe.Mark, tictactoe.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return tictactoe.X, tictactoe.O
	}
	return tictactoe.O, tictactoe.X
}
