package character

import (
	"errors"
	"strings"
	"testing"
)

// TestCreateCharacterWithRolledAttributes runs the full creation flow with
// a deterministic seed.
func TestCreateCharacterWithRolledAttributes(t *testing.T) {
	c, err := CreateCharacter(CreateCharacterInput{
		Name:       "Jasper Calhoun",
		Age:        18,
		Attributes: RolledAttributes{Seed: 11},
		MoneySeed:  12,
	})
	if err != nil {
		t.Fatalf("CreateCharacter returned error: %v", err)
	}

	if c.ID == "" {
		t.Fatal("expected generated character id")
	}
	if c.Bracket != BracketYoung {
		t.Fatalf("expected Young bracket, got %s", c.Bracket)
	}
	if c.Status != StatusBracketApplied {
		t.Fatalf("expected status %s, got %s", StatusBracketApplied, c.Status)
	}
	if c.SkillPoints != BracketYoung.Effects().SkillBudget {
		t.Fatalf("expected budget %d, got %d", BracketYoung.Effects().SkillBudget, c.SkillPoints)
	}
	for _, score := range []int{c.Vigor, c.Finesse, c.Smarts} {
		if score < AttributeMin || score > AttributeMax {
			t.Fatalf("attribute %d outside valid range", score)
		}
	}
	if c.Dollars < 30 || c.Dollars > 180 {
		t.Fatalf("starting money %d outside valid range", c.Dollars)
	}
	if len(c.Equipment) != 3 {
		t.Fatalf("expected starting gear, got %v", c.Equipment)
	}

	// Same seeds reproduce the same character aside from its id.
	again, err := CreateCharacter(CreateCharacterInput{
		Name:       "Jasper Calhoun",
		Age:        18,
		Attributes: RolledAttributes{Seed: 11},
		MoneySeed:  12,
	})
	if err != nil {
		t.Fatalf("CreateCharacter returned error: %v", err)
	}
	if again.Vigor != c.Vigor || again.Finesse != c.Finesse || again.Smarts != c.Smarts || again.Dollars != c.Dollars {
		t.Fatalf("expected deterministic creation, got %+v vs %+v", again, c)
	}
}

// TestCreateCharacterWithManualAttributes ensures manual entry is validated
// before age effects apply.
func TestCreateCharacterWithManualAttributes(t *testing.T) {
	c, err := CreateCharacter(CreateCharacterInput{
		Name:       "Ruby Nash",
		Age:        55,
		Attributes: ManualAttributes{Vigor: 12, Finesse: 10, Smarts: 16},
	})
	if err != nil {
		t.Fatalf("CreateCharacter returned error: %v", err)
	}
	effects := BracketElder.Effects()
	if c.Vigor != 12+effects.VigorDelta {
		t.Fatalf("expected penalty applied once: vigor %d", c.Vigor)
	}
	if c.SkillPoints != effects.SkillBudget {
		t.Fatalf("expected Elder budget %d, got %d", effects.SkillBudget, c.SkillPoints)
	}

	_, err = CreateCharacter(CreateCharacterInput{
		Name:       "Ruby Nash",
		Age:        55,
		Attributes: ManualAttributes{Vigor: 2, Finesse: 10, Smarts: 16},
	})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("CreateCharacter error = %v, want %v", err, ErrInvalidAttribute)
	}
}

// TestCreateCharacterRejectsUnsupportedAges ensures bracket resolution gates
// creation.
func TestCreateCharacterRejectsUnsupportedAges(t *testing.T) {
	for _, age := range []int{13, 58} {
		_, err := CreateCharacter(CreateCharacterInput{
			Name:       "Nobody",
			Age:        age,
			Attributes: ManualAttributes{Vigor: 10, Finesse: 10, Smarts: 10},
		})
		if !errors.Is(err, ErrInvalidAge) {
			t.Fatalf("CreateCharacter(age=%d) error = %v, want %v", age, err, ErrInvalidAge)
		}
	}
}

// TestValidateName covers trimming and rejection rules.
func TestValidateName(t *testing.T) {
	name, err := ValidateName("  Hank Irving  ")
	if err != nil {
		t.Fatalf("ValidateName returned error: %v", err)
	}
	if name != "Hank Irving" {
		t.Fatalf("expected trimmed name, got %q", name)
	}

	if _, err := ValidateName("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name error = %v, want %v", err, ErrEmptyName)
	}
	if _, err := ValidateName(strings.Repeat("a", 21)); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("long name error = %v, want %v", err, ErrNameTooLong)
	}
	if _, err := ValidateName("bad/name"); err == nil {
		t.Fatal("expected invalid characters to fail")
	}
}

// TestValidateNameCountsRunes ensures the length limit counts characters,
// not bytes, so accented names are not rejected early.
func TestValidateNameCountsRunes(t *testing.T) {
	// 20 runes, 21 bytes.
	name := "Émile Beauregard III"
	if _, err := ValidateName(name); err != nil {
		t.Fatalf("ValidateName(%q) returned error: %v", name, err)
	}

	// 21 runes.
	if _, err := ValidateName(name + "I"); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("long name error = %v, want %v", err, ErrNameTooLong)
	}
}

// TestValidateNameRequiresLetterOrDigit rejects names whose every character
// would be stripped from a save filename, since those saves would collide.
func TestValidateNameRequiresLetterOrDigit(t *testing.T) {
	for _, name := range []string{"...", "---", "¡¿!"} {
		if _, err := ValidateName(name); !errors.Is(err, ErrUnusableName) {
			t.Fatalf("ValidateName(%q) error = %v, want %v", name, err, ErrUnusableName)
		}
	}

	// Punctuation is fine alongside at least one letter or digit.
	if _, err := ValidateName("J.B. Books"); err != nil {
		t.Fatalf("ValidateName returned error: %v", err)
	}
}
