package model

// RushAttempt is a single rushing play as reported by the play-by-play feed.
// Distance is the yards needed for a first down or score at the snap, and
// YardsGained is the net result of the play, which may be zero or negative.
type RushAttempt struct {
	PlayID      string `json:"play_id"`
	Sequence    int    `json:"sequence"`
	Down        Down   `json:"down"`
	Distance    int    `json:"distance"`
	YardsGained int    `json:"yards_gained"`
	Touchdown   bool   `json:"touchdown"`
	Period      int    `json:"period,omitempty"`
	Clock       string `json:"clock,omitempty"`
	Text        string `json:"text,omitempty"`
}

// ClassifiedRush is a RushAttempt plus the success determination made for it.
// RequiredYards is the gain needed for the play to count as successful on its
// down and distance. Values are never mutated after classification.
type ClassifiedRush struct {
	RushAttempt
	RequiredYards int  `json:"required_yards"`
	Successful    bool `json:"successful"`
	Explosive     bool `json:"explosive"`
}
