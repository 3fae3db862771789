package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Suggestion is the advisor's answer for a single position.
type Suggestion struct {
	// Move is nil when the board is terminal.
	Move  *tictactoe.Move `json:"move"`
	Score tictactoe.Score `json:"score"`
	Turn  tictactoe.Mark  `json:"turn"`
}

type AdvisorService interface {
	SuggestMove(board tictactoe.Board) (*Suggestion, error)
}

type advisorService struct{}

func NewAdvisorService() AdvisorService {
	return &advisorService{}
}

func (that *advisorService) SuggestMove(board tictactoe.Board) (*Suggestion, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	if tictactoe.IsTerminal(board) {
		return &Suggestion{Score: tictactoe.Utility(board)}, nil
	}

	move, _ := tictactoe.OptimalMove(board)

	return &Suggestion{
		Move:  &move,
		Score: tictactoe.Evaluate(board),
		Turn:  tictactoe.Turn(board),
	}, nil
}

// validateBoard rejects boards that alternating play from the empty board
// cannot produce: bad mark counts, two winners, or moves after a win.
func validateBoard(board tictactoe.Board) error {
	var xCount, oCount int
	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case tictactoe.X:
				xCount++
			case tictactoe.O:
				oCount++
			case tictactoe.Empty:
			default:
				return fmt.Errorf("%w: unknown mark %q", apperror.ErrUnreachableBoard, cell)
			}
		}
	}

	diff := xCount - oCount
	if diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X and %d O", apperror.ErrUnreachableBoard, xCount, oCount)
	}

	xLine := tictactoe.HasLine(board, tictactoe.X)
	oLine := tictactoe.HasLine(board, tictactoe.O)

	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both X and O own a line", apperror.ErrUnreachableBoard)
	case xLine && diff != 1:
		return fmt.Errorf("%w: X won but O has moved since", apperror.ErrUnreachableBoard)
	case oLine && diff != 0:
		return fmt.Errorf("%w: O won but X has moved since", apperror.ErrUnreachableBoard)
	}

	return nil
}
