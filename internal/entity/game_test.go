package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = tictactoe.X
	o = tictactoe.O
	e = tictactoe.Empty
)

func TestNewGame(t *testing.T) {
	t.Run("Human plays O", func(t *testing.T) {
		// When: creating a game where the human holds O
		game, err := NewGame("123", o)
		require.NoError(t, err)

		// Then: the bot holds X and X moves first on an empty board
		expectedGame := &Game{
			ID:        "123",
			Board:     tictactoe.InitialState(),
			Status:    StatusOngoing,
			Turn:      x,
			HumanMark: o,
			BotMark:   x,
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Invalid mark", func(t *testing.T) {
		// When: creating a game with an empty mark
		game, err := NewGame("123", e)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Nil(t, game)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsBotTurn is false once the game is over", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Turn: x, BotMark: x}

		assert.False(t, game.IsBotTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: tictactoe.Board{
				{x, x, x},
				{o, o, e},
				{e, e, e},
			},
			Status: StatusOngoing,
			Turn:   o,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a full board without a line
		game := &Game{
			Board: tictactoe.Board{
				{x, o, x},
				{x, o, o},
				{o, x, x},
			},
			Status: StatusOngoing,
			Turn:   o,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, Tie, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: tictactoe.Board{
				{x, o, e},
				{e, x, e},
				{e, e, e},
			},
			Status: StatusOngoing,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing with O to move
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, o, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game, err := NewGame("123", x)
		require.NoError(t, err)

		// When: Player X makes a valid turn
		err = game.MakeTurn(x, tictactoe.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: The board holds the mark and the turn passes to O
		expectedGame := &Game{
			ID: "123",
			Board: tictactoe.Board{
				{x, e, e},
				{e, e, e},
				{e, e, e},
			},
			Turn:      o,
			Status:    StatusOngoing,
			HumanMark: x,
			BotMark:   o,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where the corner is occupied by Player X
		game, err := NewGame("123", x)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(x, tictactoe.Move{Row: 0, Col: 0}))
		before := *game

		// When: Player O tries to move to the same cell
		err = game.MakeTurn(o, tictactoe.Move{Row: 0, Col: 0})

		// Then: An ErrInvalidMove error should be returned and the game is unchanged
		require.ErrorIs(t, err, tictactoe.ErrInvalidMove)
		require.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game, err := NewGame("123", x)
		require.NoError(t, err)

		// When: Player O tries to make a move
		err = game.MakeTurn(o, tictactoe.Move{Row: 0, Col: 1})

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.InitialState(), game.Board)
	})

	t.Run("Error on Invalid Cell (Out of Range)", func(t *testing.T) {
		game, err := NewGame("123", x)
		require.NoError(t, err)

		err = game.MakeTurn(x, tictactoe.Move{Row: 3, Col: -1})

		assert.ErrorIs(t, err, tictactoe.ErrInvalidMove)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &Game{
			Board: tictactoe.Board{
				{x, x, x},
				{e, o, e},
				{e, o, e},
			},
			Status: StatusFinished,
			Winner: x,
		}

		// When: player O tries to make a move after the game is over
		err := game.MakeTurn(o, tictactoe.Move{Row: 1, Col: 0})

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Move on a game with a corrupted status", func(t *testing.T) {
		// Given: a stored game whose status is neither ongoing nor finished
		game := &Game{
			Board:  tictactoe.InitialState(),
			Status: "paused",
			Turn:   x,
		}

		// When: X tries to move
		err := game.MakeTurn(x, tictactoe.Move{Row: 1, Col: 1})

		// Then: the status is reported and the board is untouched
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Equal(t, tictactoe.InitialState(), game.Board)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move from completing the top row
		game := &Game{
			Board: tictactoe.Board{
				{x, x, e},
				{o, o, e},
				{e, e, e},
			},
			Status: StatusOngoing,
			Turn:   x,
		}

		// When: X completes the row
		err := game.MakeTurn(x, tictactoe.Move{Row: 0, Col: 2})

		// Then: X is the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, x, game.Winner)
	})
}

func TestGetRandomMarks(t *testing.T) {
	for range 20 {
		human, bot := GetRandomMarks()

		opponent, err := Opponent(human)
		require.NoError(t, err)
		assert.Equal(t, opponent, bot)
	}
}
