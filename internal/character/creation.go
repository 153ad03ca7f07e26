package character

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/whiskey-hollow/internal/dice"
	"github.com/louisbranch/whiskey-hollow/internal/platform/id"
)

// maxNameLength bounds character names so save filenames stay manageable.
const maxNameLength = 20

// startingEquipment is the gear every new character begins with, in
// insertion order.
var startingEquipment = []string{"Worn Boots", "Tattered Hat", "Old Knife"}

// AttributeSet holds the three core attribute scores.
type AttributeSet struct {
	Vigor   int
	Finesse int
	Smarts  int
}

// AttributeSource produces the starting attribute scores for a character.
type AttributeSource interface {
	Attributes() (AttributeSet, error)
}

// RolledAttributes rolls each attribute independently with 4d6 drop lowest.
// The three rolls and the starting money draw derive from Seed, so a
// creation run is reproducible from a single seed value.
type RolledAttributes struct {
	Seed int64
}

// Attributes rolls the three attribute scores.
func (r RolledAttributes) Attributes() (AttributeSet, error) {
	result, err := dice.RollDice(dice.RollRequest{
		Dice: []dice.DiceSpec{
			{Sides: 6, Count: 4, DropLowest: 1},
			{Sides: 6, Count: 4, DropLowest: 1},
			{Sides: 6, Count: 4, DropLowest: 1},
		},
		Seed: r.Seed,
	})
	if err != nil {
		return AttributeSet{}, err
	}
	return AttributeSet{
		Vigor:   result.Rolls[0].Total,
		Finesse: result.Rolls[1].Total,
		Smarts:  result.Rolls[2].Total,
	}, nil
}

// ManualAttributes supplies player-entered attribute scores.
type ManualAttributes AttributeSet

// Attributes returns the manually entered scores.
func (m ManualAttributes) Attributes() (AttributeSet, error) {
	return AttributeSet(m), nil
}

// CreateCharacterInput describes the input for creating a character.
type CreateCharacterInput struct {
	Name       string
	Age        int
	Attributes AttributeSource
	// MoneySeed drives the starting money roll.
	MoneySeed int64
}

// CreateCharacter runs the creation flow: validate identity, resolve the
// age bracket, draw attributes, and apply age effects exactly once. The
// returned character is in StatusBracketApplied, ready for skill
// allocation.
func CreateCharacter(input CreateCharacterInput) (Character, error) {
	name, err := ValidateName(input.Name)
	if err != nil {
		return Character{}, err
	}

	bracket, err := ResolveBracket(input.Age)
	if err != nil {
		return Character{}, err
	}

	if input.Attributes == nil {
		return Character{}, fmt.Errorf("attribute source is required")
	}
	attrs, err := input.Attributes.Attributes()
	if err != nil {
		return Character{}, fmt.Errorf("draw attributes: %w", err)
	}
	if err := ValidateAttributeSet(attrs); err != nil {
		return Character{}, err
	}

	characterID, err := id.NewID()
	if err != nil {
		return Character{}, fmt.Errorf("generate character id: %w", err)
	}

	dollars, err := dice.RollStartingMoney(input.MoneySeed)
	if err != nil {
		return Character{}, fmt.Errorf("roll starting money: %w", err)
	}

	c := Character{
		ID:        characterID,
		Name:      name,
		Age:       input.Age,
		Vigor:     attrs.Vigor,
		Finesse:   attrs.Finesse,
		Smarts:    attrs.Smarts,
		Skills:    make(map[string]int),
		Equipment: append([]string{}, startingEquipment...),
		Dollars:   dollars,
		Status:    StatusDraft,
	}

	if err := c.ApplyAgeEffects(bracket); err != nil {
		return Character{}, err
	}
	return c, nil
}

// ValidateName trims and validates a character name, returning the cleaned
// value. Names need at least one letter or digit so every character maps to
// a distinct save filename.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: %q", ErrNameTooLong, name)
	}
	if strings.ContainsAny(name, `/\:*?"<>|`) {
		return "", fmt.Errorf("name %q contains invalid characters", name)
	}
	if !strings.ContainsFunc(name, isFileSafeRune) {
		return "", fmt.Errorf("%w: %q needs at least one letter or digit", ErrUnusableName, name)
	}
	return name, nil
}

func isFileSafeRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ValidateAttributeSet checks all three scores against the valid range.
func ValidateAttributeSet(attrs AttributeSet) error {
	for _, score := range []int{attrs.Vigor, attrs.Finesse, attrs.Smarts} {
		if score < AttributeMin || score > AttributeMax {
			return fmt.Errorf("%w: got %d", ErrInvalidAttribute, score)
		}
	}
	return nil
}
