package controller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/victorres11/football-data-adhoc/cache"
	"github.com/victorres11/football-data-adhoc/cfbd"
	"github.com/victorres11/football-data-adhoc/db"
	"github.com/victorres11/football-data-adhoc/espn"
	"github.com/victorres11/football-data-adhoc/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// AnalyzeGame fetches a team's rushing plays for a game from ESPN,
	// classifies them, stores the results, and returns the full analysis.
	AnalyzeGame(ctx context.Context, gameID, team string) (*model.GameAnalysis, error)
	// GetGameAnalysis returns a previously stored analysis.
	GetGameAnalysis(ctx context.Context, gameID, team string) (*model.GameAnalysis, error)
	ListGames(ctx context.Context) ([]model.Game, error)
	ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error)
	// GetSeasonSummary rolls up every stored rush attempt for a team.
	GetSeasonSummary(ctx context.Context, team string) (*model.SuccessSummary, error)
	// ImportSeason pulls a team's full season of play-by-play data from
	// CollegeFootballData and analyzes every completed game. Returns the
	// number of games imported.
	ImportSeason(ctx context.Context, year int, team string) (int, error)

	// ExportSnapshot writes a JSON snapshot of a stored analysis, and
	// ImportSnapshot reads one back, reclassifying its plays so the stored
	// result always reflects the current rules.
	ExportSnapshot(ctx context.Context, w io.Writer, gameID, team string) error
	ImportSnapshot(ctx context.Context, r io.Reader) (*model.GameAnalysis, error)

	RunPeriodicGameSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock clock.Clock
	db    db.DB
	espn  espn.Client
	cfbd  cfbd.Client  // nil when no CFBD API key is configured
	cache *cache.Cache // nil when no redis is configured
}

func New(clock clock.Clock, db db.DB, espn espn.Client, cfbd cfbd.Client, cache *cache.Cache) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
		espn:  espn,
		cfbd:  cfbd,
		cache: cache,
	}
	return c, nil
}
