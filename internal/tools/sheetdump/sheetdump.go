// Package sheetdump prints a saved character's sheet without entering
// the interactive shell.
package sheetdump

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/whiskey-hollow/internal/character"
	whcmd "github.com/louisbranch/whiskey-hollow/internal/cmd/whiskeyhollow"
	"github.com/louisbranch/whiskey-hollow/internal/storage"
)

// Config holds sheet dump configuration.
type Config struct {
	Store whcmd.Config
	Name  string
}

// ParseConfig parses environment and flags into a Config. The character
// name is the single positional argument.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	store, err := whcmd.ParseConfig(fs, args)
	if err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return Config{}, errors.New("exactly one character name is required")
	}
	return Config{Store: store, Name: rest[0]}, nil
}

// Run loads the named character and writes its sheet to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}

	store, err := whcmd.OpenStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	record, err := store.Get(ctx, cfg.Name)
	if err != nil {
		return err
	}
	c, err := character.FromRecord(record)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}

	_, err = io.WriteString(out, character.RenderSheet(&c))
	return err
}
