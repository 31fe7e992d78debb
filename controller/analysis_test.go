package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
	"github.com/victorres11/football-data-adhoc/cache"
	"github.com/victorres11/football-data-adhoc/cfbd"
	"github.com/victorres11/football-data-adhoc/containers"
	"github.com/victorres11/football-data-adhoc/db"
	"github.com/victorres11/football-data-adhoc/db/mockdb"
	"github.com/victorres11/football-data-adhoc/espn"
	"github.com/victorres11/football-data-adhoc/model"
	"github.com/victorres11/football-data-adhoc/testutils"
)

func TestAnalyzeGame(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	ctx := context.Background()

	a, err := ctrl.AnalyzeGame(ctx, "401752873", "maryland")
	if err != nil {
		t.Fatalf("unexpected error analyzing game: %v", err)
	}

	if a.Team != "Maryland Terrapins" {
		t.Errorf("expected team to resolve to Maryland Terrapins, got %s", a.Team)
	}
	if a.Game.ID != "401752873" || a.Game.HomeScore != 24 || a.Game.AwayScore != 17 {
		t.Errorf("unexpected game header: %+v", a.Game)
	}

	// The fixture has 5 rushes for Maryland, but one is missing its down and
	// distance and is skipped during classification.
	if len(a.Plays) != 4 {
		t.Fatalf("expected 4 classified plays, got %d", len(a.Plays))
	}

	s := a.Summary
	if s.TotalAttempts != 4 || s.SuccessfulAttempts != 3 {
		t.Errorf("expected 3 of 4 successful, got %d of %d", s.SuccessfulAttempts, s.TotalAttempts)
	}
	if s.ExplosiveAttempts != 0 {
		t.Errorf("expected no explosive runs, got %d", s.ExplosiveAttempts)
	}
	if s.TotalYards != 10 {
		t.Errorf("expected 10 total yards, got %d", s.TotalYards)
	}
	if s.OverallRate == nil || *s.OverallRate != 0.75 {
		t.Errorf("expected overall rate 0.75, got %v", s.OverallRate)
	}
	if s.YardsPerAttempt == nil || *s.YardsPerAttempt != 2.5 {
		t.Errorf("expected 2.5 yards per attempt, got %v", s.YardsPerAttempt)
	}

	second := s.ByDown[model.DownSecond]
	if second.Attempts != 2 || second.Successes != 1 {
		t.Errorf("expected 1 of 2 successful on second down, got %+v", second)
	}

	// The analysis must now be readable back from storage.
	stored, err := ctrl.GetGameAnalysis(ctx, "401752873", "Maryland Terrapins")
	if err != nil {
		t.Fatalf("unexpected error loading stored analysis: %v", err)
	}
	if len(stored.Plays) != len(a.Plays) {
		t.Fatalf("expected %d stored plays, got %d", len(a.Plays), len(stored.Plays))
	}
	for i := range a.Plays {
		if stored.Plays[i] != a.Plays[i] {
			t.Errorf("stored play %d differs: %+v vs %+v", i, stored.Plays[i], a.Plays[i])
		}
	}
	if stored.Summary.TotalAttempts != 4 || stored.Summary.SuccessfulAttempts != 3 {
		t.Errorf("unexpected stored summary: %+v", stored.Summary)
	}
}

func TestAnalyzeGameUnknownGame(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	if _, err := ctrl.AnalyzeGame(context.Background(), "999999999", "maryland"); err == nil {
		t.Fatalf("expected error analyzing unknown game")
	}
}

func TestGetGameAnalysisNotFound(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	_, err = ctrl.GetGameAnalysis(context.Background(), "111111111", "maryland")
	if !errors.Is(err, db.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGetGameAnalysisCacheFirst(t *testing.T) {
	redisContainer := containers.NewRedisContainer()
	defer redisContainer.Shutdown()

	ctx := context.Background()
	ch, err := cache.New(ctx, redisContainer.ConnectionString())
	if err != nil {
		t.Fatalf("error connecting to cache: %v", err)
	}
	defer ch.Close()

	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	// Each DB read is expected exactly once. The second GetGameAnalysis call
	// must be served from the cache or the mock fails the test.
	mdb := &mockdb.DB{}
	mdb.On("GetGame", mock.Anything, testutils.MarylandGame.ID).Return(testutils.MarylandGame, nil).Once()
	mdb.On("GetRushAttempts", mock.Anything, testutils.MarylandGame.ID, testutils.MarylandGame.HomeTeam).Return(testutils.MarylandPlays, nil).Once()

	ctrl, err := New(clock.New(), mdb, espn.NewForTest(fakeESPN.URL()), nil, ch)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	first, err := ctrl.GetGameAnalysis(ctx, testutils.MarylandGame.ID, testutils.MarylandGame.HomeTeam)
	if err != nil {
		t.Fatalf("unexpected error on first read: %v", err)
	}

	second, err := ctrl.GetGameAnalysis(ctx, testutils.MarylandGame.ID, testutils.MarylandGame.HomeTeam)
	if err != nil {
		t.Fatalf("unexpected error on cached read: %v", err)
	}

	if second.Game.ID != first.Game.ID || second.Team != first.Team {
		t.Errorf("cached analysis differs: %+v vs %+v", second, first)
	}
	if len(second.Plays) != len(first.Plays) {
		t.Fatalf("expected %d cached plays, got %d", len(first.Plays), len(second.Plays))
	}
	for i := range first.Plays {
		if second.Plays[i] != first.Plays[i] {
			t.Errorf("cached play %d differs: %+v vs %+v", i, second.Plays[i], first.Plays[i])
		}
	}
	if second.Summary.TotalAttempts != first.Summary.TotalAttempts ||
		second.Summary.SuccessfulAttempts != first.Summary.SuccessfulAttempts {
		t.Errorf("cached summary differs: %+v vs %+v", second.Summary, first.Summary)
	}

	mdb.AssertExpectations(t)
}

func TestGetGameAnalysisCacheUnavailable(t *testing.T) {
	if err := testutils.InsertTestGame(testDB.DB); err != nil {
		t.Fatalf("error inserting test game: %v", err)
	}

	// Nothing listens on this port, so every cache read and write errors.
	ch, err := cache.NewForTest("redis://127.0.0.1:1")
	if err != nil {
		t.Fatalf("error building cache: %v", err)
	}
	defer ch.Close()

	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, ch)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	a, err := ctrl.GetGameAnalysis(context.Background(), testutils.MarylandGame.ID, testutils.MarylandGame.HomeTeam)
	if err != nil {
		t.Fatalf("expected the analysis to fall through to the database, got: %v", err)
	}
	if len(a.Plays) != len(testutils.MarylandPlays) {
		t.Errorf("expected %d plays, got %d", len(testutils.MarylandPlays), len(a.Plays))
	}
}

func TestGetSeasonSummary(t *testing.T) {
	if err := testutils.InsertTestGame(testDB.DB); err != nil {
		t.Fatalf("error inserting test game: %v", err)
	}

	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	s, err := ctrl.GetSeasonSummary(context.Background(), "Maryland Terrapins")
	if err != nil {
		t.Fatalf("unexpected error getting season summary: %v", err)
	}

	if s.TotalAttempts != 4 || s.SuccessfulAttempts != 3 {
		t.Errorf("expected 3 of 4 successful, got %d of %d", s.SuccessfulAttempts, s.TotalAttempts)
	}
	if s.TotalYards != 10 {
		t.Errorf("expected 10 total yards, got %d", s.TotalYards)
	}
}

func TestGetSeasonSummaryMergesGames(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	byGame := map[string][]model.ClassifiedRush{
		"game-1": {
			{
				RushAttempt:   model.RushAttempt{PlayID: "p1", Down: model.DownFirst, Distance: 10, YardsGained: 5},
				RequiredYards: 4,
				Successful:    true,
			},
			{
				RushAttempt:   model.RushAttempt{PlayID: "p2", Down: model.DownSecond, Distance: 5, YardsGained: 1},
				RequiredYards: 3,
			},
		},
		"game-2": {
			{
				RushAttempt:   model.RushAttempt{PlayID: "p3", Down: model.DownFirst, Distance: 10, YardsGained: 24},
				RequiredYards: 4,
				Successful:    true,
				Explosive:     true,
			},
		},
	}

	mdb := &mockdb.DB{}
	mdb.On("GetTeamRushAttempts", mock.Anything, "Maryland Terrapins").Return(byGame, nil).Once()

	ctrl, err := New(clock.New(), mdb, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	s, err := ctrl.GetSeasonSummary(context.Background(), "Maryland Terrapins")
	if err != nil {
		t.Fatalf("unexpected error getting season summary: %v", err)
	}

	if s.TotalAttempts != 3 || s.SuccessfulAttempts != 2 {
		t.Errorf("expected 2 of 3 successful across games, got %d of %d", s.SuccessfulAttempts, s.TotalAttempts)
	}
	if s.ExplosiveAttempts != 1 {
		t.Errorf("expected 1 explosive run, got %d", s.ExplosiveAttempts)
	}
	if s.TotalYards != 30 {
		t.Errorf("expected 30 total yards, got %d", s.TotalYards)
	}
	first := s.ByDown[model.DownFirst]
	if first.Attempts != 2 || first.Successes != 2 {
		t.Errorf("expected 2 of 2 successful on first down, got %+v", first)
	}

	mdb.AssertExpectations(t)
}

func TestGetSeasonSummaryNoData(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	s, err := ctrl.GetSeasonSummary(context.Background(), "Nobody State")
	if err != nil {
		t.Fatalf("unexpected error getting empty season summary: %v", err)
	}
	if s.TotalAttempts != 0 {
		t.Errorf("expected no attempts, got %d", s.TotalAttempts)
	}
	if s.OverallRate != nil {
		t.Errorf("expected undefined overall rate, got %v", *s.OverallRate)
	}
}

func TestImportSeason(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	fakeCFBD := testutils.NewFakeCFBDServer()
	defer fakeCFBD.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), cfbd.NewForTest(fakeCFBD.URL(), testutils.CFBDTestKey), nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}
	ctx := context.Background()

	// The fixture season has two games, but only one is completed.
	imported, err := ctrl.ImportSeason(ctx, 2025, "Maryland")
	if err != nil {
		t.Fatalf("unexpected error importing season: %v", err)
	}
	if imported != 1 {
		t.Errorf("expected 1 imported game, got %d", imported)
	}

	s, err := ctrl.GetSeasonSummary(ctx, "Maryland")
	if err != nil {
		t.Fatalf("unexpected error getting season summary: %v", err)
	}
	if s.TotalAttempts != 2 || s.SuccessfulAttempts != 2 {
		t.Errorf("expected 2 of 2 successful, got %d of %d", s.SuccessfulAttempts, s.TotalAttempts)
	}
	if s.ExplosiveAttempts != 1 {
		t.Errorf("expected 1 explosive run, got %d", s.ExplosiveAttempts)
	}
	if s.TotalYards != 27 {
		t.Errorf("expected 27 total yards, got %d", s.TotalYards)
	}
}

func TestImportSeasonNoCFBDClient(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	ctrl, err := New(clock.New(), testDB.DB, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	if _, err := ctrl.ImportSeason(context.Background(), 2025, "Maryland"); err == nil {
		t.Fatalf("expected error importing without a CFBD client")
	}
}

func TestRunPeriodicGameSync(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()

	mdb := &mockdb.DB{}
	ctrl, err := New(clock.New(), mdb, espn.NewForTest(fakeESPN.URL()), nil, nil)
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	games := []model.Game{
		{ID: "401752873", HomeTeam: "Maryland Terrapins", AwayTeam: "Northwestern Wildcats", Completed: false},
		{ID: "401752000", HomeTeam: "Ohio State Buckeyes", AwayTeam: "Penn State Nittany Lions", Completed: true},
	}

	mdb.On("ListGames", mock.Anything).Return(games, nil).Times(3)
	// Only the incomplete game is re-analyzed.
	mdb.On("ListAnalyzedTeams", mock.Anything, "401752873").Return([]string{"Maryland Terrapins"}, nil).Times(3)
	mdb.On("SaveGame", mock.Anything, mock.Anything).Return(nil).Times(3)
	mdb.On("SaveRushAttempts", mock.Anything, "401752873", "Maryland Terrapins", mock.Anything).Return(nil).Times(3)

	shutdown := make(chan bool, 1)
	go func() {
		time.Sleep(160 * time.Millisecond) // enough time to run 3 times, but not 4
		close(shutdown)
	}()
	var wg sync.WaitGroup

	wg.Add(1)
	ctrl.RunPeriodicGameSync(50*time.Millisecond, shutdown, &wg)
	wg.Wait()

	mdb.AssertExpectations(t)
}
