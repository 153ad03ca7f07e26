// Package namegen suggests western-themed character names from a fixed
// dataset.
package namegen

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
)

//go:embed names_data.json
var defaultNamesJSON []byte

// ErrEmptyDataset indicates a name dataset with a missing category.
var ErrEmptyDataset = errors.New("name dataset must include male, female, and surname entries")

// Gender selects which first-name pool to draw from.
type Gender int

const (
	// GenderAny draws from both first-name pools.
	GenderAny Gender = iota
	// GenderMale draws male first names.
	GenderMale
	// GenderFemale draws female first names.
	GenderFemale
)

type dataset struct {
	MaleFirstNames   []string `json:"male_first_names"`
	FemaleFirstNames []string `json:"female_first_names"`
	Surnames         []string `json:"surnames"`
}

// Generator produces random full names from a dataset.
type Generator struct {
	data dataset
}

// New builds a generator from the embedded default dataset.
func New() (*Generator, error) {
	return fromJSON(defaultNamesJSON)
}

// NewFromFile builds a generator from a JSON dataset on disk. The file must
// carry the same shape as the embedded dataset.
func NewFromFile(path string) (*Generator, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}
	return fromJSON(payload)
}

func fromJSON(payload []byte) (*Generator, error) {
	var data dataset
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("parse names dataset: %w", err)
	}
	if len(data.MaleFirstNames) == 0 || len(data.FemaleFirstNames) == 0 || len(data.Surnames) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Generator{data: data}, nil
}

// Random returns a full name drawn from both first-name pools.
//
// Random is deterministic with respect to seed.
func (g *Generator) Random(seed int64) string {
	return g.RandomFor(GenderAny, seed)
}

// RandomFor returns a full name for the requested gender pool.
func (g *Generator) RandomFor(gender Gender, seed int64) string {
	rng := rand.New(rand.NewSource(seed))

	var pool []string
	switch gender {
	case GenderMale:
		pool = g.data.MaleFirstNames
	case GenderFemale:
		pool = g.data.FemaleFirstNames
	default:
		pool = make([]string, 0, len(g.data.MaleFirstNames)+len(g.data.FemaleFirstNames))
		pool = append(pool, g.data.MaleFirstNames...)
		pool = append(pool, g.data.FemaleFirstNames...)
	}

	first := pool[rng.Intn(len(pool))]
	surname := g.data.Surnames[rng.Intn(len(g.data.Surnames))]
	return first + " " + surname
}
