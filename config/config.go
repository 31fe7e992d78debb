package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// Port for the web server.
	Port int `envconfig:"PORT" default:"3000"`
	// PostgresConnStr is the connection string for the analysis database.
	PostgresConnStr string `envconfig:"POSTGRES_CONN_STR" required:"true"`
	// RedisURL enables the analysis cache when set, like redis://localhost:6379.
	RedisURL string `envconfig:"REDIS_URL"`
	// CFBDAPIKey enables season imports from CollegeFootballData when set.
	CFBDAPIKey string `envconfig:"CFBD_API_KEY"`
	// GameSyncFrequency is how often incomplete games are re-analyzed.
	GameSyncFrequency string `envconfig:"GAME_SYNC_FREQUENCY" default:"15m"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
