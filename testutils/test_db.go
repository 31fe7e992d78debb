package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/victorres11/football-data-adhoc/containers"
	"github.com/victorres11/football-data-adhoc/db"
	"github.com/victorres11/football-data-adhoc/model"
)

// Test fixtures matching the fake ESPN server's game.
var (
	MarylandGame = &model.Game{
		ID:        "401752873",
		HomeTeam:  "Maryland Terrapins",
		AwayTeam:  "Northwestern Wildcats",
		HomeScore: 24,
		AwayScore: 17,
		Date:      time.Date(2025, time.September, 6, 19, 30, 0, 0, time.UTC),
		Completed: true,
	}

	MarylandPlays = []model.ClassifiedRush{
		{
			RushAttempt:   model.RushAttempt{PlayID: "4017528731011", Sequence: 0, Down: model.DownFirst, Distance: 7, YardsGained: 3, Period: 1, Clock: "14:12"},
			RequiredYards: 3,
			Successful:    true,
		},
		{
			RushAttempt:   model.RushAttempt{PlayID: "4017528731013", Sequence: 1, Down: model.DownSecond, Distance: 9, YardsGained: 4, Period: 1, Clock: "13:02"},
			RequiredYards: 5,
			Successful:    false,
		},
		{
			RushAttempt:   model.RushAttempt{PlayID: "4017528733031", Sequence: 2, Down: model.DownThird, Distance: 2, YardsGained: 2, Period: 2, Clock: "08:15"},
			RequiredYards: 2,
			Successful:    true,
		},
		{
			RushAttempt:   model.RushAttempt{PlayID: "4017528733032", Sequence: 3, Down: model.DownSecond, Distance: 5, YardsGained: 1, Touchdown: true, Period: 2, Clock: "05:33"},
			RequiredYards: 3,
			Successful:    true,
		},
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (t *TestDB) Shutdown() {
	t.container.Shutdown()
}

// InsertTestGame saves the Maryland fixture game and its classified plays.
func InsertTestGame(d db.DB) error {
	ctx := context.Background()
	if err := d.SaveGame(ctx, MarylandGame); err != nil {
		return err
	}
	return d.SaveRushAttempts(ctx, MarylandGame.ID, MarylandGame.HomeTeam, MarylandPlays)
}
