package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/victorres11/football-data-adhoc/model"
)

// snapshot is the on-disk exchange format for a single game analysis. It
// carries the full classified play list so other tools can rebuild play-by-
// play tables without refetching anything.
type snapshot struct {
	Game    model.Game             `json:"game"`
	Team    string                 `json:"team"`
	Summary model.SuccessSummary   `json:"summary"`
	Plays   []model.ClassifiedRush `json:"plays"`
}

func (c *controller) ExportSnapshot(ctx context.Context, w io.Writer, gameID, team string) error {
	a, err := c.GetGameAnalysis(ctx, gameID, team)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot{
		Game:    a.Game,
		Team:    a.Team,
		Summary: a.Summary,
		Plays:   a.Plays,
	})
}

// ImportSnapshot loads an analysis from a snapshot produced by this tool or
// by the older report scripts. Plays are classified again from their raw
// fields, so a snapshot written under different thresholds is corrected on
// the way in rather than trusted.
func (c *controller) ImportSnapshot(ctx context.Context, r io.Reader) (*model.GameAnalysis, error) {
	var s snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("error parsing snapshot: %w", err)
	}
	if s.Game.ID == "" {
		return nil, fmt.Errorf("snapshot has no game id")
	}
	if s.Team == "" {
		return nil, fmt.Errorf("snapshot has no team")
	}

	plays := make([]model.ClassifiedRush, 0, len(s.Plays))
	for _, p := range s.Plays {
		classified, err := model.ClassifyRush(p.RushAttempt)
		if err != nil {
			log.Printf("skipping play %s from snapshot: %v", p.PlayID, err)
			continue
		}
		plays = append(plays, classified)
	}

	if err := c.db.SaveGame(ctx, &s.Game); err != nil {
		return nil, fmt.Errorf("error saving game %s: %w", s.Game.ID, err)
	}
	if err := c.db.SaveRushAttempts(ctx, s.Game.ID, s.Team, plays); err != nil {
		return nil, fmt.Errorf("error saving rush attempts for game %s: %w", s.Game.ID, err)
	}

	a := &model.GameAnalysis{
		Game:    s.Game,
		Team:    s.Team,
		Plays:   plays,
		Summary: model.Aggregate(plays),
	}
	c.cacheAnalysis(ctx, a)
	return a, nil
}
