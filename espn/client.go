package espn

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/victorres11/football-data-adhoc/model"
)

const ESPNURL = "https://site.api.espn.com"

// Client fetches college football game data from the ESPN site API.
type Client interface {
	// GetGame returns the header information for a single game.
	GetGame(gameID string) (*model.Game, error)
	// GetRushAttempts returns the rushing plays (including rushing
	// touchdowns) run by the given team in the given game, in game order.
	// The team name may be partial, like "maryland" for "Maryland Terrapins".
	GetRushAttempts(gameID, team string) ([]model.RushAttempt, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: ESPNURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{Timeout: 1 * time.Minute},
	}
}

func (c *client) GetGame(gameID string) (*model.Game, error) {
	summary, err := c.getSummary(gameID)
	if err != nil {
		return nil, err
	}
	return summary.toGame()
}

func (c *client) GetRushAttempts(gameID, team string) ([]model.RushAttempt, error) {
	summary, err := c.getSummary(gameID)
	if err != nil {
		return nil, err
	}

	matched := false
	for _, name := range summary.teamNames() {
		if matchesTeam(team, name) {
			matched = true
			break
		}
	}
	if !matched {
		return nil, fmt.Errorf("team %q did not play in game %s", team, gameID)
	}

	return summary.rushAttempts(team), nil
}

func (c *client) getSummary(gameID string) (*gameSummary, error) {
	url := fmt.Sprintf("%s/apis/site/v2/sports/football/college-football/summary?event=%s", c.url, gameID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var summary gameSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("error parsing summary response from espn: %w", err)
	}
	return &summary, nil
}
