package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/whiskey-hollow/internal/character"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrMalformedSaveData indicates stored data failed schema validation. A
// malformed record aborts the load of that one record only; other persisted
// records are unaffected.
var ErrMalformedSaveData = errors.New("save data is malformed")

// SaveVersion tags newly written records for forward compatibility.
const SaveVersion = "1.0.0"

// SaveInfo summarizes a persisted character without loading it fully.
type SaveInfo struct {
	ID      string
	Name    string
	Age     int
	Bracket string
	SavedAt time.Time
}

// CharacterStore persists character records. Records are keyed by the
// character's name; writing a record with an existing name overwrites it.
type CharacterStore interface {
	Put(ctx context.Context, record character.Record) error
	Get(ctx context.Context, name string) (character.Record, error)
	List(ctx context.Context) ([]SaveInfo, error)
	Delete(ctx context.Context, name string) error
	Close() error
}
