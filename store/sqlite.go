// Package store caches the last fetched item set and the user's row marks
// in SQLite so the grid can start offline.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver registration.

	"github.com/andareed/dutyfree-helper/items"
)

const timeLayout = time.RFC3339

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite is the item cache backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serialises
	// writes from concurrent commands.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.Up(db, "migrations")
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SaveItems replaces the cached item set with list and records fetchedAt.
func (s *SQLite) SaveItems(ctx context.Context, list []items.Item, fetchedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (id, name, members, buy_limit, high, low, high_time, low_time, margin, volume, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, it := range list {
		if _, err := stmt.ExecContext(ctx,
			it.ID, it.Name, nullableBool(it.Members), it.Limit, it.High, it.Low,
			it.HighTime, it.LowTime, it.Margin, it.Volume, i,
		); err != nil {
			return fmt.Errorf("insert item %d: %w", it.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO fetches (id, fetched_at, item_count) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET fetched_at = excluded.fetched_at, item_count = excluded.item_count`,
		fetchedAt.UTC().Format(timeLayout), len(list),
	); err != nil {
		return fmt.Errorf("record fetch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadItems returns the cached items in API order and the time they were
// fetched. An empty cache returns no items and a zero time.
func (s *SQLite) LoadItems(ctx context.Context) ([]items.Item, time.Time, error) {
	var fetchedAt time.Time
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT fetched_at FROM fetches WHERE id = 1`).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, time.Time{}, nil
	case err != nil:
		return nil, time.Time{}, fmt.Errorf("query fetch time: %w", err)
	}
	fetchedAt, err = time.Parse(timeLayout, raw)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fetch time %q: %w", raw, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, members, buy_limit, high, low, high_time, low_time, margin, volume
		 FROM items ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var list []items.Item
	for rows.Next() {
		var it items.Item
		var members sql.NullBool
		if err := rows.Scan(&it.ID, &it.Name, &members, &it.Limit, &it.High, &it.Low,
			&it.HighTime, &it.LowTime, &it.Margin, &it.Volume); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan item: %w", err)
		}
		if members.Valid {
			b := members.Bool
			it.Members = &b
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate items: %w", err)
	}
	return list, fetchedAt, nil
}

// SetMark tags an item with colour. An empty colour removes the mark.
func (s *SQLite) SetMark(ctx context.Context, itemID int64, colour string) error {
	if colour == "" {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM marks WHERE item_id = ?`, itemID); err != nil {
			return fmt.Errorf("delete mark: %w", err)
		}
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO marks (item_id, colour, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET colour = excluded.colour, updated_at = excluded.updated_at`,
		itemID, colour, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert mark: %w", err)
	}
	return nil
}

// LoadMarks returns every mark keyed by item id.
func (s *SQLite) LoadMarks(ctx context.Context) (map[int64]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item_id, colour FROM marks`)
	if err != nil {
		return nil, fmt.Errorf("query marks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	marks := make(map[int64]string)
	for rows.Next() {
		var id int64
		var colour string
		if err := rows.Scan(&id, &colour); err != nil {
			return nil, fmt.Errorf("scan mark: %w", err)
		}
		marks[id] = colour
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate marks: %w", err)
	}
	return marks, nil
}

func nullableBool(b *bool) any {
	if b == nil {
		return nil
	}
	return *b
}
