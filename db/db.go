package db

import (
	"context"

	"github.com/victorres11/football-data-adhoc/model"
)

type DB interface {
	GetGame(ctx context.Context, id string) (*model.Game, error)
	SaveGame(ctx context.Context, g *model.Game) error
	// Lists all saved games, most recent game date first.
	ListGames(ctx context.Context) ([]model.Game, error)

	// SaveRushAttempts replaces all stored classified plays for the given
	// game and team with the provided set.
	SaveRushAttempts(ctx context.Context, gameID, team string, plays []model.ClassifiedRush) error
	// GetRushAttempts returns the classified plays for one team in one game,
	// in their original game order.
	GetRushAttempts(ctx context.Context, gameID, team string) ([]model.ClassifiedRush, error)
	// GetTeamRushAttempts returns every stored classified play for a team,
	// grouped by game id, so per-game summaries can be merged into
	// season-level rollups.
	GetTeamRushAttempts(ctx context.Context, team string) (map[string][]model.ClassifiedRush, error)
	// ListAnalyzedTeams returns the teams that have stored plays for the
	// given game.
	ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error)
}
