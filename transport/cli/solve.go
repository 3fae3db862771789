package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	colorX = "#E88388"
	colorO = "#66C2CD"
)

type solveOptions struct {
	play    bool
	noColor bool
}

// NewSolveCommand - builds the ttt-solve root command.
func NewSolveCommand() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "ttt-solve [board]",
		Short: "Print the minimax move for a tic-tac-toe position",
		Long: `Print the optimal move and the expected outcome for a tic-tac-toe board.

The board is nine cells in row-major order: X, O, and one of ". - _" for an
empty cell. Rows may be separated with "/" or "|". Without a board the
empty starting position is solved.`,
		Example: `  ttt-solve
  ttt-solve "XX./OO./X.."
  ttt-solve --play`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := tictactoe.InitialState()
			if len(args) == 1 {
				parsed, err := tictactoe.ParseBoard(args[0])
				if err != nil {
					return fmt.Errorf("failed to parse board: %w", err)
				}
				board = parsed
			}

			return runSolve(cmd.OutOrStdout(), board, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.play, "play", false, "keep playing optimal moves for both sides until the game ends")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runSolve(w io.Writer, board tictactoe.Board, opts *solveOptions) error {
	profile := termenv.EnvColorProfile()
	if opts.noColor {
		profile = termenv.Ascii
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	advisor := service.NewAdvisorService()

	suggestion, err := advisor.SuggestMove(board)
	if err != nil {
		return fmt.Errorf("failed to solve board: %w", err)
	}

	fmt.Fprintf(w, "Board: %s\n%s\n", board, renderBoard(out, board))

	if suggestion.Move == nil {
		fmt.Fprintf(w, "Game over: %s\n", outcome(suggestion.Score))
		return nil
	}

	fmt.Fprintf(w, "Turn: %s\n", renderMark(out, suggestion.Turn))
	fmt.Fprintf(w, "Optimal move: %s\n", suggestion.Move)
	fmt.Fprintf(w, "Expected outcome: %s\n", outcome(suggestion.Score))

	if !opts.play {
		return nil
	}

	for {
		move, ok := tictactoe.OptimalMove(board)
		if !ok {
			break
		}

		mark := tictactoe.Turn(board)
		if board, err = tictactoe.ApplyMove(board, move); err != nil {
			return fmt.Errorf("failed to apply move %s: %w", move, err)
		}

		fmt.Fprintf(w, "\n%s plays %s\n%s\n", renderMark(out, mark), move, renderBoard(out, board))
	}

	fmt.Fprintf(w, "Result: %s\n", outcome(tictactoe.Utility(board)))

	return nil
}

func renderBoard(out *termenv.Output, board tictactoe.Board) string {
	rows := make([]string, 0, len(board))
	for _, row := range board {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, " "+renderMark(out, cell)+" ")
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n---+---+---\n")
}

func renderMark(out *termenv.Output, mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.X:
		return out.String(string(mark)).Foreground(out.Color(colorX)).Bold().String()
	case tictactoe.O:
		return out.String(string(mark)).Foreground(out.Color(colorO)).Bold().String()
	default:
		return " "
	}
}

func outcome(score tictactoe.Score) string {
	switch score {
	case tictactoe.XWins:
		return "X wins"
	case tictactoe.OWins:
		return "O wins"
	default:
		return "draw"
	}
}
