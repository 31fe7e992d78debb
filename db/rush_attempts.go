package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/victorres11/football-data-adhoc/model"
)

const rushAttemptColumns = `play_id, seq, down, distance, yards_gained, touchdown,
	required_yards, successful, explosive, period, game_clock, play_text`

func (db *postgresDB) SaveRushAttempts(ctx context.Context, gameID, team string, plays []model.ClassifiedRush) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const deleteQuery = `DELETE FROM rush_attempts WHERE game_id=@gameID AND team=@team`
	if _, err := tx.Exec(ctx, deleteQuery, pgx.NamedArgs{"gameID": gameID, "team": team}); err != nil {
		return fmt.Errorf("error clearing rush attempts for game %s: %w", gameID, err)
	}

	const insertQuery = `INSERT INTO rush_attempts (
			game_id, team, play_id, seq, down, distance, yards_gained, touchdown,
			required_yards, successful, explosive, period, game_clock, play_text, created
		) VALUES (
			@gameID, @team, @playID, @seq, @down, @distance, @yardsGained, @touchdown,
			@requiredYards, @successful, @explosive, @period, @gameClock, @playText, @created
		)`

	now := db.clock.Now().UTC()
	for _, p := range plays {
		args := pgx.NamedArgs{
			"gameID":        gameID,
			"team":          team,
			"playID":        p.PlayID,
			"seq":           p.Sequence,
			"down":          int(p.Down),
			"distance":      p.Distance,
			"yardsGained":   p.YardsGained,
			"touchdown":     p.Touchdown,
			"requiredYards": p.RequiredYards,
			"successful":    p.Successful,
			"explosive":     p.Explosive,
			"period":        p.Period,
			"gameClock":     p.Clock,
			"playText":      p.Text,
			"created":       now,
		}
		if _, err := tx.Exec(ctx, insertQuery, args); err != nil {
			return fmt.Errorf("error inserting rush attempt %s: %w", p.PlayID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) GetRushAttempts(ctx context.Context, gameID, team string) ([]model.ClassifiedRush, error) {
	query := fmt.Sprintf(`SELECT %s FROM rush_attempts
			WHERE game_id=@gameID AND team=@team ORDER BY seq`, rushAttemptColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID, "team": team})
	if err != nil {
		return nil, fmt.Errorf("error querying rush attempts: %w", err)
	}
	return scanRushAttempts(rows)
}

func (db *postgresDB) GetTeamRushAttempts(ctx context.Context, team string) (map[string][]model.ClassifiedRush, error) {
	query := fmt.Sprintf(`SELECT game_id, %s FROM rush_attempts
			WHERE team=@team ORDER BY game_id, seq`, rushAttemptColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": team})
	if err != nil {
		return nil, fmt.Errorf("error querying team rush attempts: %w", err)
	}

	results := make(map[string][]model.ClassifiedRush)
	for rows.Next() {
		var gameID string
		p, err := scanRushAttempt(rows, &gameID)
		if err != nil {
			return nil, err
		}
		results[gameID] = append(results[gameID], *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rush attempts: %w", err)
	}
	return results, nil
}

func (db *postgresDB) ListAnalyzedTeams(ctx context.Context, gameID string) ([]string, error) {
	const query = `SELECT DISTINCT team FROM rush_attempts WHERE game_id=@gameID ORDER BY team`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"gameID": gameID})
	if err != nil {
		return nil, fmt.Errorf("error querying analyzed teams: %w", err)
	}

	teams := make([]string, 0, 2)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analyzed teams: %w", err)
	}
	return teams, nil
}

func scanRushAttempts(rows pgx.Rows) ([]model.ClassifiedRush, error) {
	results := make([]model.ClassifiedRush, 0, 32)
	for rows.Next() {
		p, err := scanRushAttempt(rows, nil)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rush attempts: %w", err)
	}
	return results, nil
}

// scanRushAttempt reads a single row. When gameID is non-nil the row is
// expected to lead with the game_id column.
func scanRushAttempt(row pgx.Row, gameID *string) (*model.ClassifiedRush, error) {
	var p model.ClassifiedRush
	var down int

	dest := make([]any, 0, 13)
	if gameID != nil {
		dest = append(dest, gameID)
	}
	dest = append(dest,
		&p.PlayID,
		&p.Sequence,
		&down,
		&p.Distance,
		&p.YardsGained,
		&p.Touchdown,
		&p.RequiredYards,
		&p.Successful,
		&p.Explosive,
		&p.Period,
		&p.Clock,
		&p.Text)

	if err := row.Scan(dest...); err != nil {
		return nil, fmt.Errorf("error scanning rush attempt: %w", err)
	}
	p.Down = model.Down(down)
	return &p, nil
}
