package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/victorres11/football-data-adhoc/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) SaveGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) ListGames(ctx context.Context) ([]model.Game, error) {
	args := db.Called(ctx)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (db *DB) SaveRushAttempts(ctx context.Context, gameID, team string, plays []model.ClassifiedRush) error {
	args := db.Called(ctx, gameID, team, plays)
	return args.Error(0)
}

func (db *DB) GetRushAttempts(ctx context.Context, gameID, team string) ([]model.ClassifiedRush, error) {
	args := db.Called(ctx, gameID, team)

	var plays []model.ClassifiedRush
	if args.Get(0) != nil {
		plays = args.Get(0).([]model.ClassifiedRush)
	}
	return plays, args.Error(1)
}

func (db *DB) GetTeamRushAttempts(ctx context.Context, team string) (map[string][]model.ClassifiedRush, error) {
	args := db.Called(ctx, team)

	var plays map[string][]model.ClassifiedRush
	if args.Get(0) != nil {
		plays = args.Get(0).(map[string][]model.ClassifiedRush)
	}
	return plays, args.Error(1)
}

func (db *DB) ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error) {
	args := db.Called(ctx, gameID)

	var teams []string
	if args.Get(0) != nil {
		teams = args.Get(0).([]string)
	}
	return teams, args.Error(1)
}
