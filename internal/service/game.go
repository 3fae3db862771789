package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GameService interface {
	CreateGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error)
	AbandonGame(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, apply func(game *entity.Game) error) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService BotService
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, botService BotService) GameService {
	return &gameService{
		logger:     logger.With("component", "gameService"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

// CreateGame - starts a game against the bot. An empty mark is chosen at
// random; the bot opens when it holds X.
func (that *gameService) CreateGame(ctx context.Context, humanMark tictactoe.Mark) (*entity.Game, error) {
	if humanMark == tictactoe.Empty {
		humanMark, _ = entity.GetRandomMarks()
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game, err := entity.NewGame(gameID, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "humanMark", game.HumanMark)

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human move and the bot reply in one repository update.
func (that *gameService) MakeTurn(ctx context.Context, gameID string, move tictactoe.Move) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		if err := game.MakeTurn(game.HumanMark, move); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsBotTurn() {
			if err := that.botService.MakeTurn(game); err != nil {
				return fmt.Errorf("bot failed to make turn: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// AbandonGame - removes the game before its TTL runs out.
func (that *gameService) AbandonGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", id)

	return nil
}
