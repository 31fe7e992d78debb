package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victorres11/football-data-adhoc/model"
)

var (
	ErrGameNotFound error = errors.New("game not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	const query = `SELECT id, home_team, away_team, home_score, away_score,
						game_date, completed, created, updated
					FROM games WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", id, err)
	}
	return g, nil
}

func (db *postgresDB) SaveGame(ctx context.Context, g *model.Game) error {
	if g == nil {
		return errors.New("SaveGame - game is nil")
	}
	const query = `INSERT INTO games (
			id, home_team, away_team, home_score, away_score, game_date, completed, created, updated
		) VALUES (
			@id, @homeTeam, @awayTeam, @homeScore, @awayScore, @gameDate, @completed, @now, @now
		) ON CONFLICT (id) DO UPDATE SET
			home_score=@homeScore,
			away_score=@awayScore,
			completed=@completed,
			updated=@now`

	args := pgx.NamedArgs{
		"id":        g.ID,
		"homeTeam":  g.HomeTeam,
		"awayTeam":  g.AwayTeam,
		"homeScore": g.HomeScore,
		"awayScore": g.AwayScore,
		"gameDate":  g.Date,
		"completed": g.Completed,
		"now":       db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving game %s: %w", g.ID, err)
	}
	return nil
}

func (db *postgresDB) ListGames(ctx context.Context) ([]model.Game, error) {
	const query = `SELECT id, home_team, away_team, home_score, away_score,
						game_date, completed, created, updated
					FROM games ORDER BY game_date DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	return results, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var result model.Game
	var gameDate, created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.HomeTeam,
		&result.AwayTeam,
		&result.HomeScore,
		&result.AwayScore,
		&gameDate,
		&result.Completed,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Date = gameDate.Time
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
