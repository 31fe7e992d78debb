package espn

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/victorres11/football-data-adhoc/model"
)

// espnDateFormat is the timestamp format used by the site API, which drops
// the seconds from RFC 3339.
const espnDateFormat = "2006-01-02T15:04Z07:00"

// Play types that count as rushing attempts.
const (
	playTypeRush          = "Rush"
	playTypeRushTouchdown = "Rushing Touchdown"
)

type gameSummary struct {
	Header struct {
		ID           string        `json:"id"`
		Competitions []competition `json:"competitions"`
	} `json:"header"`
	Drives struct {
		Previous []drive `json:"previous"`
		Current  *drive  `json:"current"`
	} `json:"drives"`
}

type competition struct {
	Date        string       `json:"date"`
	Competitors []competitor `json:"competitors"`
	Status      struct {
		Type struct {
			Completed bool `json:"completed"`
		} `json:"type"`
	} `json:"status"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
	} `json:"team"`
}

type drive struct {
	Team struct {
		DisplayName string `json:"displayName"`
	} `json:"team"`
	Plays []play `json:"plays"`
}

type play struct {
	ID   string `json:"id"`
	Type struct {
		Text string `json:"text"`
	} `json:"type"`
	Text   string `json:"text"`
	Period struct {
		Number int `json:"number"`
	} `json:"period"`
	Clock struct {
		DisplayValue string `json:"displayValue"`
	} `json:"clock"`
	ScoringPlay bool `json:"scoringPlay"`
	StatYardage int  `json:"statYardage"`
	Start       struct {
		Down     int `json:"down"`
		Distance int `json:"distance"`
		YardLine int `json:"yardLine"`
	} `json:"start"`
}

func (p *play) isRush() bool {
	return p.Type.Text == playTypeRush || p.Type.Text == playTypeRushTouchdown
}

func (s *gameSummary) toGame() (*model.Game, error) {
	if len(s.Header.Competitions) == 0 {
		return nil, fmt.Errorf("summary for game %s has no competitions", s.Header.ID)
	}
	comp := s.Header.Competitions[0]

	g := &model.Game{
		ID:        s.Header.ID,
		Completed: comp.Status.Type.Completed,
	}
	if comp.Date != "" {
		d, err := time.Parse(espnDateFormat, comp.Date)
		if err != nil {
			log.Printf("error parsing date %q for game %s: %v", comp.Date, s.Header.ID, err)
		} else {
			g.Date = d
		}
	}

	for _, c := range comp.Competitors {
		score := parseScore(c.Score, s.Header.ID)
		switch c.HomeAway {
		case "home":
			g.HomeTeam = c.Team.DisplayName
			g.HomeScore = score
		case "away":
			g.AwayTeam = c.Team.DisplayName
			g.AwayScore = score
		}
	}
	if g.HomeTeam == "" || g.AwayTeam == "" {
		return nil, fmt.Errorf("summary for game %s is missing competitors", s.Header.ID)
	}

	return g, nil
}

func (s *gameSummary) teamNames() []string {
	if len(s.Header.Competitions) == 0 {
		return nil
	}
	names := make([]string, 0, 2)
	for _, c := range s.Header.Competitions[0].Competitors {
		names = append(names, c.Team.DisplayName)
	}
	return names
}

// rushAttempts walks every drive by the matching team and collects its
// rushing plays in game order.
func (s *gameSummary) rushAttempts(team string) []model.RushAttempt {
	// Copy into a fresh slice so appending the current drive can never write
	// into Previous's backing array.
	drives := make([]drive, 0, len(s.Drives.Previous)+1)
	drives = append(drives, s.Drives.Previous...)
	if s.Drives.Current != nil {
		drives = append(drives, *s.Drives.Current)
	}

	result := make([]model.RushAttempt, 0, 32)
	for _, d := range drives {
		if !matchesTeam(team, d.Team.DisplayName) {
			continue
		}
		for _, p := range d.Plays {
			if !p.isRush() {
				continue
			}
			result = append(result, model.RushAttempt{
				PlayID:      p.ID,
				Sequence:    len(result),
				Down:        model.Down(p.Start.Down),
				Distance:    p.Start.Distance,
				YardsGained: p.StatYardage,
				Touchdown:   p.ScoringPlay,
				Period:      p.Period.Number,
				Clock:       p.Clock.DisplayValue,
				Text:        p.Text,
			})
		}
	}
	return result
}

// matchesTeam reports whether the requested team name refers to the given
// display name. An exact case-insensitive match or a substring like
// "maryland" works, and close misspellings are accepted via Levenshtein
// similarity.
func matchesTeam(query, displayName string) bool {
	if query == "" || displayName == "" {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	name := strings.ToLower(displayName)

	if q == name || strings.Contains(name, q) {
		return true
	}

	distance := fuzzy.LevenshteinDistance(q, name)
	maxLen := float64(max(len(q), len(name)))
	similarity := 1 - float64(distance)/maxLen
	return similarity > 0.7
}

func parseScore(s, gameID string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("error parsing score %q for game %s: %v", s, gameID, err)
		return 0
	}
	return v
}
