// Package tictactoe holds the pure board functions and the minimax search
// used to pick optimal moves. Boards are plain values: every transition
// returns a new Board and leaves its input untouched.
package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const size = 3

// Mark - a cell's content, also used to name the player who owns it.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Score is the outcome of a board from X's point of view.
type Score int

const (
	OWins Score = -1
	Draw  Score = 0
	XWins Score = 1
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrMalformedBoard = errors.New("malformed board")

	// lines are scanned rows first, then columns, then diagonals.
	lines = [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

// Board - the 3x3 grid indexed as board[row][col].
type Board [size][size]Mark

// Move - a zero-based cell position.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveFromCell - converts a flat 0..8 cell index into a move.
func MoveFromCell(cell int) Move {
	return Move{Row: cell / size, Col: cell % size}
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < size && that.Col >= 0 && that.Col < size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// InitialState - returns the empty starting board.
func InitialState() Board {
	return Board{}
}

// Turn - returns the mark that moves next. X opens, so equal counts mean X.
// The result is only meaningful for boards reachable by alternating play;
// any other board gets O whenever the counts differ.
func Turn(board Board) Mark {
	var xCount, oCount int
	for _, row := range board {
		for _, cell := range row {
			switch cell {
			case X:
				xCount++
			case O:
				oCount++
			}
		}
	}

	if xCount == oCount {
		return X
	}
	return O
}

// LegalMoves - returns every empty cell in row-major order.
func LegalMoves(board Board) []Move {
	moves := make([]Move, 0, size*size)
	for row := range size {
		for col := range size {
			if board[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// ApplyMove - returns the board after the side to move marks the given cell.
func ApplyMove(board Board, move Move) (Board, error) {
	if !move.InRange() {
		return board, fmt.Errorf("%w: cell %s is out of range", ErrInvalidMove, move)
	}

	if board[move.Row][move.Col] != Empty {
		return board, fmt.Errorf("%w: cell %s is already occupied", ErrInvalidMove, move)
	}

	next := board
	next[move.Row][move.Col] = Turn(board)

	return next, nil
}

// Winner - returns the mark owning a complete line, or Empty if there is none.
// When both marks own a line the first one in scan order is returned.
func Winner(board Board) Mark {
	for _, line := range lines {
		if owner := lineOwner(board, line); owner != Empty {
			return owner
		}
	}

	return Empty
}

// HasLine - reports whether mark owns at least one complete line.
func HasLine(board Board, mark Mark) bool {
	if mark == Empty {
		return false
	}

	for _, line := range lines {
		if lineOwner(board, line) == mark {
			return true
		}
	}

	return false
}

func lineOwner(board Board, line [3]Move) Mark {
	a := board[line[0].Row][line[0].Col]
	b := board[line[1].Row][line[1].Col]
	c := board[line[2].Row][line[2].Col]
	if a != Empty && a == b && b == c {
		return a
	}

	return Empty
}

// IsTerminal - reports whether someone has won or the board is full.
func IsTerminal(board Board) bool {
	if Winner(board) != Empty {
		return true
	}

	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Utility - scores a finished board. Non-terminal boards score as a draw.
func Utility(board Board) Score {
	switch Winner(board) {
	case X:
		return XWins
	case O:
		return OWins
	default:
		return Draw
	}
}

// ParseBoard - reads nine cell symbols: X, O, and one of ". - _" for empty.
// Whitespace, '/' and '|' may be used to separate rows and are skipped.
func ParseBoard(s string) (Board, error) {
	var board Board

	n := 0
	for _, r := range strings.ToUpper(s) {
		var mark Mark
		switch r {
		case ' ', '\t', '\n', '/', '|':
			continue
		case 'X':
			mark = X
		case 'O':
			mark = O
		case '.', '-', '_':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", ErrMalformedBoard, r)
		}

		if n == size*size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrMalformedBoard, size*size)
		}

		board[n/size][n%size] = mark
		n++
	}

	if n != size*size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedBoard, n, size*size)
	}

	return board, nil
}

// String renders the board in ParseBoard notation, e.g. "X.O/.X./..O".
func (that Board) String() string {
	var sb strings.Builder
	for row := range size {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range size {
			switch that[row][col] {
			case X, O:
				sb.WriteString(string(that[row][col]))
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
