package cfbd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/victorres11/football-data-adhoc/model"
	"golang.org/x/oauth2"
)

const CFBDURL = "https://api.collegefootballdata.com"

// Client fetches data from the CollegeFootballData API, which requires a
// bearer token for every request.
type Client interface {
	// GetGames lists a team's games for a regular season.
	GetGames(year int, team string) ([]model.Game, error)
	// GetRushAttempts returns a team's rushing plays in a single game.
	GetRushAttempts(gameID, team string) ([]model.RushAttempt, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("a CFBD API key is required")
	}
	return &client{
		url:        CFBDURL,
		httpClient: newHTTPClient(apiKey),
	}, nil
}

func NewForTest(url, apiKey string) Client {
	return &client{
		url:        url,
		httpClient: newHTTPClient(apiKey),
	}
}

func newHTTPClient(apiKey string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"})
	c := oauth2.NewClient(context.Background(), src)
	c.Timeout = 1 * time.Minute
	return c
}

func (c *client) GetGames(year int, team string) ([]model.Game, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("team", team)
	params.Set("seasonType", "regular")

	var games []cfbdGame
	if err := c.get("/games", params, &games); err != nil {
		return nil, err
	}

	result := make([]model.Game, 0, len(games))
	for _, g := range games {
		result = append(result, *g.toGame())
	}
	return result, nil
}

func (c *client) GetRushAttempts(gameID, team string) ([]model.RushAttempt, error) {
	params := url.Values{}
	params.Set("gameId", gameID)

	var plays []cfbdPlay
	if err := c.get("/plays", params, &plays); err != nil {
		return nil, err
	}

	result := make([]model.RushAttempt, 0, 32)
	for _, p := range plays {
		if !p.isRush() || !p.isOffense(team) {
			continue
		}
		result = append(result, *p.toRushAttempt(len(result)))
	}
	return result, nil
}

func (c *client) get(path string, params url.Values, result any) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?%s", c.url, path, params.Encode()), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error parsing response from cfbd: %w", err)
	}
	return nil
}
