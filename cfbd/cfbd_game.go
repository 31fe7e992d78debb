package cfbd

import (
	"fmt"
	"strings"
	"time"

	"github.com/victorres11/football-data-adhoc/model"
)

type cfbdGame struct {
	ID         int64  `json:"id"`
	Season     int    `json:"season"`
	Week       int    `json:"week"`
	StartDate  string `json:"start_date"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomePoints int    `json:"home_points"`
	AwayPoints int    `json:"away_points"`
	Completed  bool   `json:"completed"`
}

func (g *cfbdGame) toGame() *model.Game {
	game := &model.Game{
		ID:        fmt.Sprintf("%d", g.ID),
		HomeTeam:  g.HomeTeam,
		AwayTeam:  g.AwayTeam,
		HomeScore: g.HomePoints,
		AwayScore: g.AwayPoints,
		Completed: g.Completed,
	}
	if g.StartDate != "" {
		if d, err := time.Parse(time.RFC3339, g.StartDate); err == nil {
			game.Date = d
		}
	}
	return game
}

type cfbdPlay struct {
	ID          string `json:"id"`
	Offense     string `json:"offense"`
	PlayType    string `json:"play_type"`
	Down        int    `json:"down"`
	Distance    int    `json:"distance"`
	YardsGained int    `json:"yards_gained"`
	Scoring     bool   `json:"scoring"`
	Period      int    `json:"period"`
	PlayText    string `json:"play_text"`
	Clock       struct {
		Minutes int `json:"minutes"`
		Seconds int `json:"seconds"`
	} `json:"clock"`
}

func (p *cfbdPlay) isRush() bool {
	return p.PlayType == "Rush" || p.PlayType == "Rushing Touchdown"
}

func (p *cfbdPlay) isOffense(team string) bool {
	return strings.EqualFold(strings.TrimSpace(team), p.Offense)
}

func (p *cfbdPlay) toRushAttempt(sequence int) *model.RushAttempt {
	return &model.RushAttempt{
		PlayID:      p.ID,
		Sequence:    sequence,
		Down:        model.Down(p.Down),
		Distance:    p.Distance,
		YardsGained: p.YardsGained,
		Touchdown:   p.PlayType == "Rushing Touchdown" || p.Scoring,
		Period:      p.Period,
		Clock:       fmt.Sprintf("%d:%02d", p.Clock.Minutes, p.Clock.Seconds),
		Text:        p.PlayText,
	}
}
