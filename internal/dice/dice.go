// Package dice implements the dice-rolling logic for character generation.
package dice

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// ErrInvalidDropCount indicates a spec drops as many dice as it rolls.
var ErrInvalidDropCount = errors.New("drop count must be less than dice count")

// DiceSpec describes a die to roll, how many times to roll it, and how many
// of the lowest results to discard.
type DiceSpec struct {
	Sides      int
	Count      int
	DropLowest int
}

// DieRoll captures the results for a single dice spec.
type DieRoll struct {
	Sides   int
	Results []int
	Dropped []int
	Total   int
}

// RollRequest describes a request to roll one or more dice.
type RollRequest struct {
	Dice []DiceSpec
	Seed int64
}

// RollResult captures the results from rolling multiple dice.
type RollResult struct {
	Rolls []DieRoll
	Total int
}

// RollDice rolls dice based on the provided request.
//
// RollDice is deterministic with respect to the Seed field on RollRequest.
// Given the same Seed and the same Dice slice (including order and values),
// RollDice will always produce the same RollResult.
//
// Dice specs are processed in slice order and the resulting DieRoll entries
// appear in the same order. For each spec the DropLowest lowest results are
// moved to Dropped and excluded from that roll's Total; RollResult.Total is
// the sum of the kept dice across the entire request.
//
// Constraints and errors:
//
//   - At least one DiceSpec must be provided, otherwise ErrMissingDice.
//   - Each DiceSpec must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec.
//   - Each DiceSpec must have 0 <= DropLowest < Count, otherwise
//     ErrInvalidDropCount.
func RollDice(request RollRequest) (RollResult, error) {
	if len(request.Dice) == 0 {
		return RollResult{}, ErrMissingDice
	}

	rng := rand.New(rand.NewSource(request.Seed))
	rolls := make([]DieRoll, 0, len(request.Dice))
	total := 0

	for _, spec := range request.Dice {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return RollResult{}, ErrInvalidDiceSpec
		}
		if spec.DropLowest < 0 || spec.DropLowest >= spec.Count {
			return RollResult{}, ErrInvalidDropCount
		}

		results := make([]int, spec.Count)
		for i := 0; i < spec.Count; i++ {
			results[i] = rollDie(rng, spec.Sides)
		}

		kept, dropped := splitDropLowest(results, spec.DropLowest)
		rollTotal := 0
		for _, value := range kept {
			rollTotal += value
		}

		rolls = append(rolls, DieRoll{
			Sides:   spec.Sides,
			Results: results,
			Dropped: dropped,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return RollResult{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollAttribute rolls 4d6 and drops the lowest die, producing an attribute
// score in the 3..18 range.
func RollAttribute(seed int64) (int, error) {
	result, err := RollDice(RollRequest{
		Dice: []DiceSpec{{Sides: 6, Count: 4, DropLowest: 1}},
		Seed: seed,
	})
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// RollStartingMoney rolls 3d6 and multiplies the total by ten, producing a
// starting bankroll in the 30..180 range.
func RollStartingMoney(seed int64) (int, error) {
	result, err := RollDice(RollRequest{
		Dice: []DiceSpec{{Sides: 6, Count: 3}},
		Seed: seed,
	})
	if err != nil {
		return 0, err
	}
	return result.Total * 10, nil
}

// splitDropLowest partitions results into kept and dropped dice without
// disturbing the order of the kept dice.
func splitDropLowest(results []int, drop int) (kept, dropped []int) {
	if drop == 0 {
		return results, nil
	}

	sorted := append([]int(nil), results...)
	sort.Ints(sorted)
	dropped = append([]int(nil), sorted[:drop]...)

	budget := make(map[int]int, drop)
	for _, value := range dropped {
		budget[value]++
	}

	kept = make([]int, 0, len(results)-drop)
	for _, value := range results {
		if budget[value] > 0 {
			budget[value]--
			continue
		}
		kept = append(kept, value)
	}
	return kept, dropped
}

func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
