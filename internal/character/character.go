// Package character implements the character generation and age-effects
// engine: attribute records, age-bracket resolution, point-buy skill
// allocation, and the character sheet view.
package character

import (
	"errors"
	"fmt"
	"time"
)

const (
	// AttributeMin is the lowest valid attribute score.
	AttributeMin = 3
	// AttributeMax is the highest valid attribute score.
	AttributeMax = 18
)

var (
	// ErrEmptyName indicates a character name is empty or blank.
	ErrEmptyName = errors.New("character name is required")
	// ErrNameTooLong indicates a character name exceeds the limit.
	ErrNameTooLong = errors.New("character name must be 20 characters or less")
	// ErrUnusableName indicates a character name with no letters or digits.
	ErrUnusableName = errors.New("character name needs at least one letter or digit")
	// ErrInvalidAttribute indicates an attribute score outside 3..18.
	ErrInvalidAttribute = errors.New("attribute scores must be in range 3..18")
	// ErrInvalidStatusTransition indicates a disallowed lifecycle transition.
	ErrInvalidStatusTransition = errors.New("invalid character status transition")
)

// Status describes the lifecycle of a character. Transitions are
// one-directional; there is no path back to StatusDraft.
type Status int

const (
	// StatusUnspecified represents an invalid status value.
	StatusUnspecified Status = iota
	// StatusDraft indicates attributes are set but no bracket is applied.
	StatusDraft
	// StatusBracketApplied indicates age effects are applied and the skill
	// budget is known.
	StatusBracketApplied
	// StatusAllocating indicates at least one skill allocation happened.
	StatusAllocating
	// StatusFinalized indicates the character is complete or was loaded
	// from storage.
	StatusFinalized
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusBracketApplied:
		return "BracketApplied"
	case StatusAllocating:
		return "Allocating"
	case StatusFinalized:
		return "Finalized"
	default:
		return "Unspecified"
	}
}

// Character aggregates attributes, bracket, skills, and equipment into one
// record. Skills only store entries with a level above zero.
type Character struct {
	ID           string
	Name         string
	Age          int
	Vigor        int
	Finesse      int
	Smarts       int
	Bracket      AgeBracket
	SkillPoints  int
	Skills       map[string]int
	Equipment    []string
	Dollars      int
	HitPoints    int
	MaxHitPoints int
	Status       Status
}

// AttributeModifier returns the modifier for an attribute score, computed
// as floor((score-10)/2).
func AttributeModifier(score int) int {
	delta := score - 10
	if delta < 0 {
		return -((-delta + 1) / 2)
	}
	return delta / 2
}

// ApplyAgeEffects applies the bracket's attribute deltas and skill budget.
//
// Deltas are additive, so a second call would double-apply them; the
// Draft-only status check makes the creation flow's exactly-once invariant
// explicit. Attribute scores are clamped to the 3..18 range afterwards.
func (c *Character) ApplyAgeEffects(bracket AgeBracket) error {
	if c.Status != StatusDraft {
		return fmt.Errorf("%w: age effects require status %s, have %s", ErrInvalidStatusTransition, StatusDraft, c.Status)
	}

	effects := bracket.Effects()
	c.Vigor = clampAttribute(c.Vigor + effects.VigorDelta)
	c.Finesse = clampAttribute(c.Finesse + effects.FinesseDelta)
	c.Smarts = clampAttribute(c.Smarts + effects.SmartsDelta)
	c.Bracket = bracket
	c.SkillPoints = effects.SkillBudget
	c.Status = StatusBracketApplied
	c.recalculateDerivedStats()
	return nil
}

// Finalize marks the character complete. Allowed from any post-bracket
// status; finalizing a Draft fails because its skill budget is unknown.
func (c *Character) Finalize() error {
	switch c.Status {
	case StatusBracketApplied, StatusAllocating:
		c.Status = StatusFinalized
		return nil
	case StatusFinalized:
		return nil
	default:
		return fmt.Errorf("%w: cannot finalize from status %s", ErrInvalidStatusTransition, c.Status)
	}
}

// SkillLevel returns the allocated level for a skill key, zero if unset.
func (c *Character) SkillLevel(key string) int {
	return c.Skills[key]
}

// SpentSkillPoints returns the total points allocated across all skills.
func (c *Character) SpentSkillPoints() int {
	spent := 0
	for _, level := range c.Skills {
		spent += level
	}
	return spent
}

func (c *Character) recalculateDerivedStats() {
	c.MaxHitPoints = (c.Vigor + c.Finesse + c.Smarts) / 3
	c.HitPoints = c.MaxHitPoints
}

func clampAttribute(score int) int {
	if score < AttributeMin {
		return AttributeMin
	}
	if score > AttributeMax {
		return AttributeMax
	}
	return score
}

// Record is the pure data view of a Character used for persistence. Field
// order is the key order of the serialized document.
type Record struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Age          int            `json:"age"`
	AgeBracket   string         `json:"age_bracket"`
	Vigor        int            `json:"vigor"`
	Finesse      int            `json:"finesse"`
	Smarts       int            `json:"smarts"`
	SkillPoints  int            `json:"skill_points"`
	Skills       map[string]int `json:"skills"`
	Equipment    []string       `json:"equipment"`
	Dollars      int            `json:"dollars"`
	HitPoints    int            `json:"hit_points"`
	MaxHitPoints int            `json:"max_hit_points"`
	SavedAt      time.Time      `json:"saved_at"`
	Version      string         `json:"version"`
}

// Snapshot returns the persistence view of the character. Maps and slices
// are copied so the record does not alias character state.
func (c *Character) Snapshot() Record {
	skills := make(map[string]int, len(c.Skills))
	for key, level := range c.Skills {
		if level > 0 {
			skills[key] = level
		}
	}

	return Record{
		ID:           c.ID,
		Name:         c.Name,
		Age:          c.Age,
		AgeBracket:   c.Bracket.String(),
		Vigor:        c.Vigor,
		Finesse:      c.Finesse,
		Smarts:       c.Smarts,
		SkillPoints:  c.SkillPoints,
		Skills:       skills,
		Equipment:    append([]string{}, c.Equipment...),
		Dollars:      c.Dollars,
		HitPoints:    c.HitPoints,
		MaxHitPoints: c.MaxHitPoints,
	}
}

// FromRecord reconstructs a character from its persistence view. The loaded
// character enters StatusFinalized directly. Schema violations are reported
// so the caller can classify the record as malformed.
func FromRecord(record Record) (Character, error) {
	if err := ValidateRecord(record); err != nil {
		return Character{}, err
	}

	bracket, _ := BracketFromLabel(record.AgeBracket)
	skills := make(map[string]int, len(record.Skills))
	for key, level := range record.Skills {
		if level > 0 {
			skills[key] = level
		}
	}

	return Character{
		ID:           record.ID,
		Name:         record.Name,
		Age:          record.Age,
		Vigor:        record.Vigor,
		Finesse:      record.Finesse,
		Smarts:       record.Smarts,
		Bracket:      bracket,
		SkillPoints:  record.SkillPoints,
		Skills:       skills,
		Equipment:    append([]string{}, record.Equipment...),
		Dollars:      record.Dollars,
		HitPoints:    record.HitPoints,
		MaxHitPoints: record.MaxHitPoints,
		Status:       StatusFinalized,
	}, nil
}

// ValidateRecord checks the persistence view against the same invariants a
// finished character holds, including the bracket's skill budget and
// distinct-skill cap.
func ValidateRecord(record Record) error {
	if _, err := ValidateName(record.Name); err != nil {
		return err
	}
	if _, err := ResolveBracket(record.Age); err != nil {
		return err
	}
	bracket, ok := BracketFromLabel(record.AgeBracket)
	if !ok {
		return fmt.Errorf("unknown age bracket label %q", record.AgeBracket)
	}
	if resolved, _ := ResolveBracket(record.Age); resolved != bracket {
		return fmt.Errorf("age %d does not belong to bracket %s", record.Age, record.AgeBracket)
	}
	for _, score := range []int{record.Vigor, record.Finesse, record.Smarts} {
		if score < AttributeMin || score > AttributeMax {
			return fmt.Errorf("%w: got %d", ErrInvalidAttribute, score)
		}
	}
	if record.SkillPoints < 0 {
		return fmt.Errorf("skill points must be non-negative, got %d", record.SkillPoints)
	}

	spent := 0
	allocated := 0
	for key, level := range record.Skills {
		if _, ok := SkillByKey(key); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSkill, key)
		}
		if level < 0 {
			return fmt.Errorf("%w: skill %q has level %d", ErrNegativeAllocation, key, level)
		}
		spent += level
		if level > 0 {
			allocated++
		}
	}

	effects := bracket.Effects()
	if allocated > effects.SkillCountCap {
		return fmt.Errorf("%w: %d skills allocated, bracket %s allows %d", ErrSkillCapExceeded, allocated, bracket, effects.SkillCountCap)
	}
	if spent+record.SkillPoints > effects.SkillBudget {
		return fmt.Errorf("%w: %d points spent with %d remaining exceeds budget %d", ErrBudgetExceeded, spent, record.SkillPoints, effects.SkillBudget)
	}
	return nil
}
