package character

import (
	"errors"
	"fmt"
)

// ErrInvalidAge indicates an age outside the supported bracket range.
var ErrInvalidAge = errors.New("age is outside the supported range")

// AgeBracket describes the life stage of a character.
type AgeBracket int

const (
	// BracketUnspecified represents an invalid age bracket value.
	BracketUnspecified AgeBracket = iota
	// BracketYoung covers ages 14-22.
	BracketYoung
	// BracketPrime covers ages 23-34.
	BracketPrime
	// BracketExperienced covers ages 35-52.
	BracketExperienced
	// BracketElder covers ages 53-57.
	BracketElder
)

func (b AgeBracket) String() string {
	switch b {
	case BracketYoung:
		return "Young"
	case BracketPrime:
		return "Prime"
	case BracketExperienced:
		return "Experienced"
	case BracketElder:
		return "Elder"
	default:
		return "Unspecified"
	}
}

// BracketEffects describes the modifiers an age bracket applies to a
// character: one-time attribute deltas, the skill-point budget, and the
// maximum number of distinct skills that may receive points.
type BracketEffects struct {
	MinAge        int
	MaxAge        int
	VigorDelta    int
	FinesseDelta  int
	SmartsDelta   int
	SkillBudget   int
	SkillCountCap int
}

// Bracket ranges are closed, contiguous, and non-overlapping. Budgets and
// caps grow with age; physical penalties start at Experienced and peak at
// Elder. Young trades a smaller skill spread for a physical edge.
var bracketEffects = map[AgeBracket]BracketEffects{
	BracketYoung:       {MinAge: 14, MaxAge: 22, VigorDelta: 1, FinesseDelta: 1, SkillBudget: 8, SkillCountCap: 4},
	BracketPrime:       {MinAge: 23, MaxAge: 34, SkillBudget: 10, SkillCountCap: 6},
	BracketExperienced: {MinAge: 35, MaxAge: 52, VigorDelta: -1, FinesseDelta: -1, SkillBudget: 13, SkillCountCap: 8},
	BracketElder:       {MinAge: 53, MaxAge: 57, VigorDelta: -2, FinesseDelta: -2, SkillBudget: 16, SkillCountCap: 10},
}

// MinPlayableAge is the youngest age any bracket covers.
const MinPlayableAge = 14

// MaxPlayableAge is the oldest age any bracket covers.
const MaxPlayableAge = 57

// ResolveBracket maps an age to its bracket. Ages outside the supported
// range fail with ErrInvalidAge.
func ResolveBracket(age int) (AgeBracket, error) {
	for _, bracket := range []AgeBracket{BracketYoung, BracketPrime, BracketExperienced, BracketElder} {
		effects := bracketEffects[bracket]
		if age >= effects.MinAge && age <= effects.MaxAge {
			return bracket, nil
		}
	}
	return BracketUnspecified, fmt.Errorf("%w: age %d must be between %d and %d", ErrInvalidAge, age, MinPlayableAge, MaxPlayableAge)
}

// BracketFromLabel maps a stored bracket label back to its bracket.
func BracketFromLabel(label string) (AgeBracket, bool) {
	switch label {
	case "Young":
		return BracketYoung, true
	case "Prime":
		return BracketPrime, true
	case "Experienced":
		return BracketExperienced, true
	case "Elder":
		return BracketElder, true
	default:
		return BracketUnspecified, false
	}
}

// Effects returns the immutable modifier descriptor for the bracket.
func (b AgeBracket) Effects() BracketEffects {
	return bracketEffects[b]
}
