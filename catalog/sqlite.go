package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const gamesSchema = `
CREATE TABLE IF NOT EXISTS games (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT    NOT NULL,
	price         REAL    NOT NULL,
	positive_rate REAL    NOT NULL,
	total_ratings INTEGER NOT NULL,
	year          INTEGER NOT NULL,
	genres        TEXT    NOT NULL DEFAULT ''
)`

// LoadSQLite reads the games table in insertion order
func LoadSQLite(ctx context.Context, path string) ([]GameRecord, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT name, price, positive_rate, total_ratings, year, genres FROM games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var rec GameRecord
		var genres string
		if err := rows.Scan(&rec.Name, &rec.Price, &rec.PositiveRate, &rec.TotalRatings, &rec.Year, &genres); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		rec.Genres = SplitGenres(genres)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return out, nil
}

// SaveSQLite writes records into the games table, replacing previous rows
func SaveSQLite(ctx context.Context, path string, records []GameRecord) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, gamesSchema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO games (name, price, positive_rate, total_ratings, year, genres) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Name, r.Price, r.PositiveRate, r.TotalRatings, r.Year, strings.Join(r.Genres, ";")); err != nil {
			return fmt.Errorf("insert %q: %w", r.Name, err)
		}
	}
	return tx.Commit()
}
