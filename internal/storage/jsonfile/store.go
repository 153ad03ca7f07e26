// Package jsonfile provides a JSON-file-backed character store, one
// human-readable document per character.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/louisbranch/whiskey-hollow/internal/character"
	"github.com/louisbranch/whiskey-hollow/internal/storage"
)

const saveSuffix = "_save.json"

// Store persists one JSON save file per character under a directory.
type Store struct {
	dir   string
	clock func() time.Time
}

// Open prepares a JSON save store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("save directory is required")
	}

	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &Store{dir: cleanDir, clock: time.Now}, nil
}

// Close releases the store. JSON files need no teardown.
func (s *Store) Close() error {
	return nil
}

// Put writes a character record to its save file, overwriting any previous
// save for the same name. The record is stamped with the save time and
// format version before writing.
func (s *Store) Put(ctx context.Context, record character.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.dir == "" {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("character name is required")
	}

	record.SavedAt = s.clock().UTC().Truncate(time.Second)
	record.Version = storage.SaveVersion

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal character: %w", err)
	}
	payload = append(payload, '\n')

	path, err := s.savePath(record.Name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}

// Get loads a character record by name. Missing files map to ErrNotFound;
// undecodable or schema-violating files map to ErrMalformedSaveData without
// touching any other save.
func (s *Store) Get(ctx context.Context, name string) (character.Record, error) {
	if err := ctx.Err(); err != nil {
		return character.Record{}, err
	}
	if s == nil || s.dir == "" {
		return character.Record{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return character.Record{}, fmt.Errorf("character name is required")
	}

	path, err := s.savePath(name)
	if err != nil {
		return character.Record{}, err
	}
	return s.readRecord(path)
}

// List summarizes every save in the directory, sorted by character name.
// Malformed saves are skipped so one bad file cannot hide the rest.
func (s *Store) List(ctx context.Context) ([]storage.SaveInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.dir == "" {
		return nil, fmt.Errorf("storage is not configured")
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read save directory: %w", err)
	}

	var infos []storage.SaveInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), saveSuffix) {
			continue
		}
		record, err := s.readRecord(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		infos = append(infos, storage.SaveInfo{
			ID:      record.ID,
			Name:    record.Name,
			Age:     record.Age,
			Bracket: record.AgeBracket,
			SavedAt: record.SavedAt,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Delete removes one character's save file.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.dir == "" {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("character name is required")
	}

	path, err := s.savePath(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete save file: %w", err)
	}
	return nil
}

// Backup copies a character's save file aside with a .backup suffix.
func (s *Store) Backup(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.dir == "" {
		return "", fmt.Errorf("storage is not configured")
	}

	path, err := s.savePath(name)
	if err != nil {
		return "", err
	}
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read save file: %w", err)
	}

	backupPath := path + ".backup"
	if err := os.WriteFile(backupPath, payload, 0o644); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return backupPath, nil
}

func (s *Store) readRecord(path string) (character.Record, error) {
	payload, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return character.Record{}, storage.ErrNotFound
	}
	if err != nil {
		return character.Record{}, fmt.Errorf("read save file: %w", err)
	}

	var record character.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return character.Record{}, fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}
	if err := character.ValidateRecord(record); err != nil {
		return character.Record{}, fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}
	return record, nil
}

// savePath maps a character name to its save file. Names whose sanitized
// form is empty have no distinct filename and are rejected so they cannot
// all collapse onto one file.
func (s *Store) savePath(name string) (string, error) {
	key := safeFileName(name)
	if key == "" {
		return "", fmt.Errorf("character name %q has no filename-safe characters", name)
	}
	return filepath.Join(s.dir, key+saveSuffix), nil
}

// safeFileName lowercases a character name and strips anything that could
// confuse a filesystem path.
func safeFileName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '/', r == '\\':
			b.WriteRune('_')
		}
	}
	return b.String()
}
