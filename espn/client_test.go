package espn

import (
	"errors"
	"testing"
	"time"

	"github.com/victorres11/football-data-adhoc/model"
	"github.com/victorres11/football-data-adhoc/testutils"
)

func TestGetGame(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	game, err := client.GetGame("401752873")
	if err != nil {
		t.Fatalf("unexpected error getting game: %v", err)
	}

	wantDate := time.Date(2025, 9, 6, 19, 30, 0, 0, time.UTC)
	if game.ID != "401752873" {
		t.Errorf("expected game ID 401752873, got %s", game.ID)
	}
	if game.HomeTeam != "Maryland Terrapins" || game.AwayTeam != "Northwestern Wildcats" {
		t.Errorf("unexpected teams: %s vs %s", game.HomeTeam, game.AwayTeam)
	}
	if game.HomeScore != 24 || game.AwayScore != 17 {
		t.Errorf("expected score 24-17, got %d-%d", game.HomeScore, game.AwayScore)
	}
	if !game.Completed {
		t.Errorf("expected game to be completed")
	}
	if !game.Date.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, game.Date)
	}
}

func TestGetGameNotFound(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	_, err := client.GetGame("999999999")
	if err == nil {
		t.Fatalf("expected error for unknown game")
	}
}

func TestGetRushAttempts(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	attempts, err := client.GetRushAttempts("401752873", "Maryland")
	if err != nil {
		t.Fatalf("unexpected error getting rush attempts: %v", err)
	}

	if len(attempts) != 5 {
		t.Fatalf("expected 5 rush attempts, got %d", len(attempts))
	}

	first := attempts[0]
	if first.PlayID != "4017528731011" {
		t.Errorf("expected first play 4017528731011, got %s", first.PlayID)
	}
	if first.Down != model.DownFirst || first.Distance != 7 || first.YardsGained != 3 {
		t.Errorf("unexpected first play situation: %+v", first)
	}
	if first.Touchdown {
		t.Errorf("first play should not be a touchdown")
	}

	// Plays keep game order and sequence numbers count only rushes.
	for i, a := range attempts {
		if a.Sequence != i {
			t.Errorf("expected sequence %d, got %d", i, a.Sequence)
		}
	}

	td := attempts[3]
	if !td.Touchdown || td.YardsGained != 1 {
		t.Errorf("expected play %s to be a 1 yard touchdown: %+v", td.PlayID, td)
	}

	// The Northwestern rush must not leak into Maryland's attempts.
	for _, a := range attempts {
		if a.PlayID == "4017528732021" {
			t.Errorf("opponent play %s included in rush attempts", a.PlayID)
		}
	}
}

func TestGetRushAttemptsUnknownTeam(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	_, err := client.GetRushAttempts("401752873", "Ohio State")
	if err == nil {
		t.Fatalf("expected error for team that did not play")
	}
}

func TestGetRushAttemptsHTTPError(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	_, err := client.GetRushAttempts("401752873", "Maryland")
	if err == nil {
		t.Fatalf("expected error when server is unreachable")
	}
}

func TestMatchesTeam(t *testing.T) {
	tests := []struct {
		query       string
		displayName string
		expected    bool
	}{
		{query: "Maryland Terrapins", displayName: "Maryland Terrapins", expected: true},
		{query: "maryland", displayName: "Maryland Terrapins", expected: true},
		{query: "terrapins", displayName: "Maryland Terrapins", expected: true},
		{query: "Maryland Terrapin", displayName: "Maryland Terrapins", expected: true},
		{query: "Northwestern", displayName: "Maryland Terrapins", expected: false},
		{query: "", displayName: "Maryland Terrapins", expected: false},
		{query: "maryland", displayName: "", expected: false},
	}

	for _, test := range tests {
		got := matchesTeam(test.query, test.displayName)
		if got != test.expected {
			t.Errorf("matchesTeam(%q, %q) = %v, expected %v", test.query, test.displayName, got, test.expected)
		}
	}
}

func TestClassifyMalformedFeedPlay(t *testing.T) {
	fakeESPN := testutils.NewFakeESPNServer()
	defer fakeESPN.Close()
	client := NewForTest(fakeESPN.URL())

	attempts, err := client.GetRushAttempts("401752873", "Maryland")
	if err != nil {
		t.Fatalf("unexpected error getting rush attempts: %v", err)
	}

	// The last play in the fixture has no down or distance recorded and must
	// be rejected by classification.
	_, err = model.ClassifyRush(attempts[4])
	if !errors.Is(err, model.ErrInvalidPlay) {
		t.Errorf("expected ErrInvalidPlay for play %s, got %v", attempts[4].PlayID, err)
	}
}

func TestRushAttemptsDoesNotMutatePreviousDrives(t *testing.T) {
	// Previous is a subslice with spare capacity. If rushAttempts appends the
	// current drive in place, the sentinel drive gets overwritten.
	backing := make([]drive, 2)
	backing[0].Team.DisplayName = "Maryland Terrapins"
	backing[1].Team.DisplayName = "sentinel"

	current := drive{}
	current.Team.DisplayName = "Northwestern Wildcats"

	var s gameSummary
	s.Drives.Previous = backing[:1]
	s.Drives.Current = &current

	s.rushAttempts("Maryland")

	if backing[1].Team.DisplayName != "sentinel" {
		t.Errorf("backing array was mutated, got %q", backing[1].Team.DisplayName)
	}
}
