// Package sqlite provides a SQLite-backed character store. Characters are
// kept as JSON payloads alongside summary columns used for listing.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/whiskey-hollow/internal/character"
	"github.com/louisbranch/whiskey-hollow/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/whiskey-hollow/internal/storage"
	"github.com/louisbranch/whiskey-hollow/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for character records.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens and migrates a character SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, clock: time.Now}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put upserts a character record keyed by its normalized name.
func (s *Store) Put(ctx context.Context, record character.Record) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("character name is required")
	}

	record.SavedAt = s.clock().UTC().Truncate(time.Second)
	record.Version = storage.SaveVersion

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal character: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (name_key, id, name, age, age_bracket, payload_json, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name_key) DO UPDATE SET
		   id = excluded.id,
		   name = excluded.name,
		   age = excluded.age,
		   age_bracket = excluded.age_bracket,
		   payload_json = excluded.payload_json,
		   saved_at = excluded.saved_at`,
		nameKey(record.Name),
		record.ID,
		record.Name,
		record.Age,
		record.AgeBracket,
		string(payload),
		record.SavedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

// Get loads a character record by name. Rows with undecodable or
// schema-violating payloads map to ErrMalformedSaveData.
func (s *Store) Get(ctx context.Context, name string) (character.Record, error) {
	if s == nil || s.sqlDB == nil {
		return character.Record{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return character.Record{}, fmt.Errorf("character name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT payload_json FROM characters WHERE name_key = ?`,
		nameKey(name),
	)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return character.Record{}, storage.ErrNotFound
		}
		return character.Record{}, fmt.Errorf("get character: %w", err)
	}

	var record character.Record
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return character.Record{}, fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}
	if err := character.ValidateRecord(record); err != nil {
		return character.Record{}, fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}
	return record, nil
}

// List summarizes stored characters ordered by name.
func (s *Store) List(ctx context.Context) ([]storage.SaveInfo, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, age, age_bracket, saved_at FROM characters ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var infos []storage.SaveInfo
	for rows.Next() {
		var info storage.SaveInfo
		var savedAt int64
		if err := rows.Scan(&info.ID, &info.Name, &info.Age, &info.Bracket, &savedAt); err != nil {
			return nil, fmt.Errorf("scan character row: %w", err)
		}
		info.SavedAt = time.UnixMilli(savedAt).UTC()
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate character rows: %w", err)
	}
	return infos, nil
}

// Delete removes one character row.
func (s *Store) Delete(ctx context.Context, name string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("character name is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE name_key = ?`, nameKey(name))
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
