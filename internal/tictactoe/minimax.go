package tictactoe

import "fmt"

// OptimalMove - returns the best move for the side to move, or false when
// the board is terminal. Among equally good moves the first one in
// LegalMoves order wins.
func OptimalMove(board Board) (Move, bool) {
	if IsTerminal(board) {
		return Move{}, false
	}

	player := Turn(board)
	moves := LegalMoves(board)

	best := moves[0]
	bestScore := childValue(player, mustApply(board, best))

	for _, move := range moves[1:] {
		score := childValue(player, mustApply(board, move))
		if (player == X && score > bestScore) || (player == O && score < bestScore) {
			best, bestScore = move, score
		}
	}

	return best, true
}

// Evaluate - returns the value of the board under optimal play by both sides.
func Evaluate(board Board) Score {
	if Turn(board) == X {
		return MaxValue(board)
	}
	return MinValue(board)
}

// MaxValue - value of a board where X moves and plays optimally.
func MaxValue(board Board) Score {
	if IsTerminal(board) {
		return Utility(board)
	}

	value := OWins
	for _, move := range LegalMoves(board) {
		value = max(value, MinValue(mustApply(board, move)))
	}

	return value
}

// MinValue - value of a board where O moves and plays optimally.
func MinValue(board Board) Score {
	if IsTerminal(board) {
		return Utility(board)
	}

	value := XWins
	for _, move := range LegalMoves(board) {
		value = min(value, MaxValue(mustApply(board, move)))
	}

	return value
}

// childValue scores the board reached by player's move, from the
// opponent's turn.
func childValue(player Mark, child Board) Score {
	if player == X {
		return MinValue(child)
	}
	return MaxValue(child)
}

// mustApply - moves come from LegalMoves, so a rejection is a bug in the search.
func mustApply(board Board, move Move) Board {
	next, err := ApplyMove(board, move)
	if err != nil {
		panic(fmt.Errorf("minimax: legal move rejected: %w", err))
	}

	return next
}
