package mockcontroller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/victorres11/football-data-adhoc/model"
)

type C struct {
	mock.Mock
}

func (c *C) AnalyzeGame(ctx context.Context, gameID, team string) (*model.GameAnalysis, error) {
	args := c.Called(ctx, gameID, team)

	var a *model.GameAnalysis
	if args.Get(0) != nil {
		a = args.Get(0).(*model.GameAnalysis)
	}
	return a, args.Error(1)
}

func (c *C) GetGameAnalysis(ctx context.Context, gameID, team string) (*model.GameAnalysis, error) {
	args := c.Called(ctx, gameID, team)

	var a *model.GameAnalysis
	if args.Get(0) != nil {
		a = args.Get(0).(*model.GameAnalysis)
	}
	return a, args.Error(1)
}

func (c *C) ListGames(ctx context.Context) ([]model.Game, error) {
	args := c.Called(ctx)

	var games []model.Game
	if args.Get(0) != nil {
		games = args.Get(0).([]model.Game)
	}
	return games, args.Error(1)
}

func (c *C) ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error) {
	args := c.Called(ctx, gameID)

	var teams []string
	if args.Get(0) != nil {
		teams = args.Get(0).([]string)
	}
	return teams, args.Error(1)
}

func (c *C) GetSeasonSummary(ctx context.Context, team string) (*model.SuccessSummary, error) {
	args := c.Called(ctx, team)

	var s *model.SuccessSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.SuccessSummary)
	}
	return s, args.Error(1)
}

func (c *C) ImportSeason(ctx context.Context, year int, team string) (int, error) {
	args := c.Called(ctx, year, team)
	return args.Int(0), args.Error(1)
}

func (c *C) ExportSnapshot(ctx context.Context, w io.Writer, gameID, team string) error {
	args := c.Called(ctx, w, gameID, team)
	return args.Error(0)
}

func (c *C) ImportSnapshot(ctx context.Context, r io.Reader) (*model.GameAnalysis, error) {
	args := c.Called(ctx, r)

	var a *model.GameAnalysis
	if args.Get(0) != nil {
		a = args.Get(0).(*model.GameAnalysis)
	}
	return a, args.Error(1)
}

func (c *C) RunPeriodicGameSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
