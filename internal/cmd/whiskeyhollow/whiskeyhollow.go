// Package whiskeyhollow parses command flags and starts the interactive
// character tool.
package whiskeyhollow

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/whiskey-hollow/internal/namegen"
	entrypoint "github.com/louisbranch/whiskey-hollow/internal/platform/cmd"
	"github.com/louisbranch/whiskey-hollow/internal/shell"
	"github.com/louisbranch/whiskey-hollow/internal/storage"
	"github.com/louisbranch/whiskey-hollow/internal/storage/jsonfile"
	"github.com/louisbranch/whiskey-hollow/internal/storage/sqlite"
)

// Storage backend identifiers.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds character tool configuration.
type Config struct {
	Backend   string `env:"WHISKEY_HOLLOW_BACKEND" envDefault:"json"`
	SaveDir   string `env:"WHISKEY_HOLLOW_SAVE_DIR" envDefault:"saves"`
	DBPath    string `env:"WHISKEY_HOLLOW_DB_PATH" envDefault:"whiskey-hollow.db"`
	NamesFile string `env:"WHISKEY_HOLLOW_NAMES_FILE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Storage backend: json or sqlite")
	fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "Directory for JSON save files")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (sqlite backend)")
	fs.StringVar(&cfg.NamesFile, "names", cfg.NamesFile, "Path to a custom name dataset (optional)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// OpenStore opens the character store selected by cfg.
func OpenStore(cfg Config) (storage.CharacterStore, error) {
	switch cfg.Backend {
	case BackendJSON:
		return jsonfile.Open(cfg.SaveDir)
	case BackendSQLite:
		return sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Run opens the configured store and drives the interactive shell over
// the given streams until the user quits.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	store, err := OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	var names *namegen.Generator
	if cfg.NamesFile != "" {
		names, err = namegen.NewFromFile(cfg.NamesFile)
	} else {
		names, err = namegen.New()
	}
	if err != nil {
		return fmt.Errorf("load name dataset: %w", err)
	}

	return shell.New(in, out, store, names).Run(ctx)
}
