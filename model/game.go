package model

import "time"

// Game holds the header information for a single college football game as
// reported by the data source. ID is the ESPN event id.
type Game struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	Created   time.Time `json:"-"`
	Updated   time.Time `json:"-"`
}

// GameAnalysis is the full rushing analysis of one team in one game: the
// classified play sequence plus its rollup. The play list is exposed so that
// report generators can build a play-by-play table with per-play markers.
type GameAnalysis struct {
	Game    Game             `json:"game"`
	Team    string           `json:"team"`
	Plays   []ClassifiedRush `json:"plays"`
	Summary SuccessSummary   `json:"summary"`
}
