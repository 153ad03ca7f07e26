package character

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSkill indicates a skill key missing from the catalog.
	ErrUnknownSkill = errors.New("skill is not in the catalog")
	// ErrNegativeAllocation indicates an allocation would drop a skill below zero.
	ErrNegativeAllocation = errors.New("skill level cannot go below zero")
	// ErrSkillCapExceeded indicates the bracket's distinct-skill cap is reached.
	ErrSkillCapExceeded = errors.New("bracket skill count cap exceeded")
	// ErrBudgetExceeded indicates the bracket's skill-point budget is exhausted.
	ErrBudgetExceeded = errors.New("skill point budget exceeded")
)

// AllocateSkill applies a point-buy delta to one skill and returns the
// remaining budget.
//
// Constraints are checked in a fixed order so error reporting stays
// deterministic when several violations co-occur: catalog membership,
// non-negativity, skill-count cap, then budget. A rejected allocation
// leaves the character untouched.
func AllocateSkill(c *Character, key string, delta int) (int, error) {
	switch c.Status {
	case StatusBracketApplied, StatusAllocating:
	default:
		return c.SkillPoints, fmt.Errorf("%w: allocation requires an applied bracket, have status %s", ErrInvalidStatusTransition, c.Status)
	}

	if _, ok := SkillByKey(key); !ok {
		return c.SkillPoints, fmt.Errorf("%w: %q", ErrUnknownSkill, key)
	}

	current := c.Skills[key]
	next := current + delta
	if next < 0 {
		return c.SkillPoints, fmt.Errorf("%w: skill %q is at %d, delta %d", ErrNegativeAllocation, key, current, delta)
	}

	effects := c.Bracket.Effects()
	if current == 0 && next > 0 && countAllocated(c.Skills) >= effects.SkillCountCap {
		return c.SkillPoints, fmt.Errorf("%w: bracket %s allows %d skills", ErrSkillCapExceeded, c.Bracket, effects.SkillCountCap)
	}

	remaining := c.SkillPoints - delta
	if remaining < 0 {
		return c.SkillPoints, fmt.Errorf("%w: %d points remain, delta %d", ErrBudgetExceeded, c.SkillPoints, delta)
	}

	if c.Skills == nil {
		c.Skills = make(map[string]int)
	}
	if next == 0 {
		delete(c.Skills, key)
	} else {
		c.Skills[key] = next
	}
	c.SkillPoints = remaining
	c.Status = StatusAllocating
	return remaining, nil
}

func countAllocated(skills map[string]int) int {
	count := 0
	for _, level := range skills {
		if level > 0 {
			count++
		}
	}
	return count
}
