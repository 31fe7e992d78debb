package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/victorres11/football-data-adhoc/cache"
	"github.com/victorres11/football-data-adhoc/model"
)

func (c *controller) AnalyzeGame(ctx context.Context, gameID, team string) (*model.GameAnalysis, error) {
	game, err := c.espn.GetGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("error fetching game %s: %w", gameID, err)
	}
	team = canonicalTeam(game, team)

	attempts, err := c.espn.GetRushAttempts(gameID, team)
	if err != nil {
		return nil, fmt.Errorf("error fetching plays for game %s: %w", gameID, err)
	}

	plays := classifyAttempts(gameID, attempts)

	if err := c.db.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("error saving game %s: %w", gameID, err)
	}
	if err := c.db.SaveRushAttempts(ctx, gameID, team, plays); err != nil {
		return nil, fmt.Errorf("error saving rush attempts for game %s: %w", gameID, err)
	}

	a := &model.GameAnalysis{
		Game:    *game,
		Team:    team,
		Plays:   plays,
		Summary: model.Aggregate(plays),
	}
	c.cacheAnalysis(ctx, a)
	return a, nil
}

func (c *controller) GetGameAnalysis(ctx context.Context, gameID, team string) (*model.GameAnalysis, error) {
	if c.cache != nil {
		a, err := c.cache.ReadGameAnalysis(ctx, gameID, team)
		if err == nil {
			return a, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("error reading analysis from cache: %v", err)
		}
	}

	game, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	team = canonicalTeam(game, team)

	plays, err := c.db.GetRushAttempts(ctx, gameID, team)
	if err != nil {
		return nil, fmt.Errorf("error loading rush attempts for game %s: %w", gameID, err)
	}

	a := &model.GameAnalysis{
		Game:    *game,
		Team:    team,
		Plays:   plays,
		Summary: model.Aggregate(plays),
	}
	c.cacheAnalysis(ctx, a)
	return a, nil
}

func (c *controller) ListGames(ctx context.Context) ([]model.Game, error) {
	return c.db.ListGames(ctx)
}

func (c *controller) ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error) {
	return c.db.ListAnalyzedTeams(ctx, gameID)
}

func (c *controller) GetSeasonSummary(ctx context.Context, team string) (*model.SuccessSummary, error) {
	byGame, err := c.db.GetTeamRushAttempts(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("error loading rush attempts for %s: %w", team, err)
	}

	s := model.Aggregate(nil)
	for _, plays := range byGame {
		s = model.Merge(s, model.Aggregate(plays))
	}
	return &s, nil
}

func (c *controller) ImportSeason(ctx context.Context, year int, team string) (int, error) {
	if c.cfbd == nil {
		return 0, errors.New("no CFBD client configured")
	}

	start := time.Now()
	log.Printf("season import for %s %d starting at %v", team, year, start.Format(time.DateTime))

	games, err := c.cfbd.GetGames(year, team)
	if err != nil {
		return 0, fmt.Errorf("error listing %d games for %s: %w", year, team, err)
	}

	imported := 0
	for _, g := range games {
		if !g.Completed {
			continue
		}

		attempts, err := c.cfbd.GetRushAttempts(g.ID, team)
		if err != nil {
			return imported, fmt.Errorf("error fetching plays for game %s: %w", g.ID, err)
		}
		plays := classifyAttempts(g.ID, attempts)

		if err := c.db.SaveGame(ctx, &g); err != nil {
			return imported, fmt.Errorf("error saving game %s: %w", g.ID, err)
		}
		if err := c.db.SaveRushAttempts(ctx, g.ID, team, plays); err != nil {
			return imported, fmt.Errorf("error saving rush attempts for game %s: %w", g.ID, err)
		}
		imported++
	}

	log.Printf("season import finished, %d games, took %v", imported, time.Since(start))
	return imported, nil
}

// RunPeriodicGameSync re-analyzes games that were not yet final so their
// stored results converge once the game completes.
func (c *controller) RunPeriodicGameSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			if err := c.syncIncompleteGames(ctx); err != nil {
				log.Printf("error syncing games: %v", err)
			}
			cancel()
		}
	}
}

func (c *controller) syncIncompleteGames(ctx context.Context) error {
	games, err := c.db.ListGames(ctx)
	if err != nil {
		return err
	}

	for _, g := range games {
		if g.Completed {
			continue
		}
		teams, err := c.db.ListAnalyzedTeams(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, team := range teams {
			if _, err := c.AnalyzeGame(ctx, g.ID, team); err != nil {
				log.Printf("error re-analyzing game %s for %s: %v", g.ID, team, err)
			}
		}
	}
	return nil
}

// classifyAttempts applies the success rules to each play. Plays the source
// reported with an out-of-domain down or distance are logged and skipped
// rather than aborting the whole game.
func classifyAttempts(gameID string, attempts []model.RushAttempt) []model.ClassifiedRush {
	plays := make([]model.ClassifiedRush, 0, len(attempts))
	for _, a := range attempts {
		p, err := model.ClassifyRush(a)
		if err != nil {
			log.Printf("skipping play %s in game %s: %v", a.PlayID, gameID, err)
			continue
		}
		plays = append(plays, p)
	}
	return plays
}

// canonicalTeam resolves a partial team name like "maryland" to the full
// display name from the game header, so stored data is keyed consistently.
func canonicalTeam(g *model.Game, team string) string {
	q := strings.ToLower(strings.TrimSpace(team))
	for _, name := range []string{g.HomeTeam, g.AwayTeam} {
		if strings.ToLower(name) == q || strings.Contains(strings.ToLower(name), q) {
			return name
		}
	}
	return team
}

func (c *controller) cacheAnalysis(ctx context.Context, a *model.GameAnalysis) {
	if c.cache == nil {
		return
	}
	if err := c.cache.WriteGameAnalysis(ctx, a); err != nil {
		log.Printf("error caching analysis for game %s: %v", a.Game.ID, err)
	}
}
