// Package shell drives the character tool through a sequential text-based
// prompt flow. The shell owns all terminal I/O; core packages are called
// with fully-formed arguments and report typed errors back.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/whiskey-hollow/internal/character"
	"github.com/louisbranch/whiskey-hollow/internal/namegen"
	"github.com/louisbranch/whiskey-hollow/internal/random"
	"github.com/louisbranch/whiskey-hollow/internal/storage"
)

// ErrInputClosed indicates the input stream ended mid-prompt.
var ErrInputClosed = errors.New("input stream closed")

// Shell runs the interactive menu loop.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	store storage.CharacterStore
	names *namegen.Generator
	seed  func() (int64, error)
}

// New builds a shell reading prompts from in and writing to out.
func New(in io.Reader, out io.Writer, store storage.CharacterStore, names *namegen.Generator) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		store: store,
		names: names,
		seed:  random.NewSeed,
	}
}

// WithSeedSource overrides the seed source. Tests use this to make rolls
// reproducible.
func (s *Shell) WithSeedSource(seed func() (int64, error)) *Shell {
	s.seed = seed
	return s
}

// Run executes the main menu loop until the user quits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "\nWHISKEY HOLLOW\n")
		fmt.Fprint(s.out, "1. New character\n")
		fmt.Fprint(s.out, "2. Load character\n")
		fmt.Fprint(s.out, "3. List saves\n")
		fmt.Fprint(s.out, "4. Delete save\n")
		fmt.Fprint(s.out, "5. Quit\n")

		choice, err := s.promptLine("Choice: ")
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := s.newCharacter(ctx); err != nil {
				if errors.Is(err, ErrInputClosed) {
					return nil
				}
				fmt.Fprintf(s.out, "Character creation failed: %v\n", err)
			}
		case "2":
			if err := s.loadCharacter(ctx); err != nil {
				if errors.Is(err, ErrInputClosed) {
					return nil
				}
				fmt.Fprintf(s.out, "Load failed: %v\n", err)
			}
		case "3":
			if err := s.listSaves(ctx); err != nil {
				fmt.Fprintf(s.out, "List failed: %v\n", err)
			}
		case "4":
			if err := s.deleteSave(ctx); err != nil {
				if errors.Is(err, ErrInputClosed) {
					return nil
				}
				fmt.Fprintf(s.out, "Delete failed: %v\n", err)
			}
		case "5", "q", "quit":
			fmt.Fprint(s.out, "So long, stranger.\n")
			return nil
		default:
			fmt.Fprint(s.out, "Invalid choice. Try again, stranger.\n")
		}
	}
}

func (s *Shell) newCharacter(ctx context.Context) error {
	name, err := s.promptName()
	if err != nil {
		return err
	}

	age, err := s.promptAge()
	if err != nil {
		return err
	}

	attrs, err := s.promptAttributes()
	if err != nil {
		return err
	}

	moneySeed, err := s.seed()
	if err != nil {
		return fmt.Errorf("generate seed: %w", err)
	}

	c, err := character.CreateCharacter(character.CreateCharacterInput{
		Name:       name,
		Age:        age,
		Attributes: attrs,
		MoneySeed:  moneySeed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nWell howdy, %s! Time to pick up some skills.\n", c.Name)
	if err := s.allocateSkills(&c); err != nil {
		return err
	}

	if err := c.Finalize(); err != nil {
		return err
	}
	fmt.Fprint(s.out, "\n"+character.RenderSheet(&c))

	save, err := s.promptLine("Save this character? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(save, "y") || strings.EqualFold(save, "yes") {
		if err := s.store.Put(ctx, c.Snapshot()); err != nil {
			return fmt.Errorf("save character: %w", err)
		}
		fmt.Fprintf(s.out, "Saved %s.\n", c.Name)
	} else {
		fmt.Fprint(s.out, "Character discarded.\n")
	}
	return nil
}

func (s *Shell) promptName() (string, error) {
	suggestion := ""
	if s.names != nil {
		if seed, err := s.seed(); err == nil {
			suggestion = s.names.Random(seed)
		}
	}

	for {
		prompt := "Name: "
		if suggestion != "" {
			prompt = fmt.Sprintf("Name [%s]: ", suggestion)
		}
		input, err := s.promptLine(prompt)
		if err != nil {
			return "", err
		}
		if input == "" && suggestion != "" {
			input = suggestion
		}
		name, err := character.ValidateName(input)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return name, nil
	}
}

func (s *Shell) promptAge() (int, error) {
	for {
		age, err := s.promptInt(fmt.Sprintf("Age (%d-%d): ", character.MinPlayableAge, character.MaxPlayableAge))
		if err != nil {
			return 0, err
		}
		if _, err := character.ResolveBracket(age); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return age, nil
	}
}

// promptAttributes lets the player roll (with re-rolls) or enter scores by
// hand. The chosen source is returned for CreateCharacter.
func (s *Shell) promptAttributes() (character.AttributeSource, error) {
	for {
		fmt.Fprint(s.out, "\n1. Roll attributes (4d6 drop lowest)\n")
		fmt.Fprint(s.out, "2. Enter attributes manually\n")
		choice, err := s.promptLine("Choice: ")
		if err != nil {
			return nil, err
		}

		switch choice {
		case "1":
			return s.promptRolledAttributes()
		case "2":
			return s.promptManualAttributes()
		default:
			fmt.Fprint(s.out, "Invalid choice.\n")
		}
	}
}

func (s *Shell) promptRolledAttributes() (character.AttributeSource, error) {
	for {
		seed, err := s.seed()
		if err != nil {
			return nil, fmt.Errorf("generate seed: %w", err)
		}
		source := character.RolledAttributes{Seed: seed}
		attrs, err := source.Attributes()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(s.out, "Rolled: Vigor %d, Finesse %d, Smarts %d\n", attrs.Vigor, attrs.Finesse, attrs.Smarts)

		keep, err := s.promptLine("Keep these? (y to keep, anything else re-rolls): ")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(keep, "y") || strings.EqualFold(keep, "yes") {
			return source, nil
		}
	}
}

func (s *Shell) promptManualAttributes() (character.AttributeSource, error) {
	for {
		var scores [3]int
		labels := []string{"Vigor", "Finesse", "Smarts"}
		for i, label := range labels {
			value, err := s.promptInt(fmt.Sprintf("%s (%d-%d): ", label, character.AttributeMin, character.AttributeMax))
			if err != nil {
				return nil, err
			}
			scores[i] = value
		}
		source := character.ManualAttributes{Vigor: scores[0], Finesse: scores[1], Smarts: scores[2]}
		if err := character.ValidateAttributeSet(character.AttributeSet(source)); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		return source, nil
	}
}

func (s *Shell) allocateSkills(c *character.Character) error {
	skills := character.Catalog()
	for {
		if c.SkillPoints == 0 {
			fmt.Fprint(s.out, "All skill points spent.\n")
			return nil
		}

		fmt.Fprintf(s.out, "\nSkill points remaining: %d (bracket %s allows %d skills)\n",
			c.SkillPoints, c.Bracket, c.Bracket.Effects().SkillCountCap)
		for i, skill := range skills {
			level := c.SkillLevel(skill.Key)
			marker := " "
			if level > 0 {
				marker = fmt.Sprintf("%d", level)
			}
			fmt.Fprintf(s.out, "%2d. %-15s [%s]\n", i+1, skill.Name, marker)
		}

		choice, err := s.promptInt("Skill number (0 to finish): ")
		if err != nil {
			return err
		}
		if choice == 0 {
			if c.SkillPoints > 0 {
				fmt.Fprintf(s.out, "Leaving %d points unspent.\n", c.SkillPoints)
			}
			return nil
		}
		if choice < 1 || choice > len(skills) {
			fmt.Fprint(s.out, "Invalid selection.\n")
			continue
		}

		delta, err := s.promptInt("Points to add: ")
		if err != nil {
			return err
		}

		remaining, err := character.AllocateSkill(c, skills[choice-1].Key, delta)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "%s is now level %d. %d points left.\n",
			skills[choice-1].Name, c.SkillLevel(skills[choice-1].Key), remaining)
	}
}

func (s *Shell) loadCharacter(ctx context.Context) error {
	info, err := s.pickSave(ctx)
	if err != nil || info == nil {
		return err
	}

	record, err := s.store.Get(ctx, info.Name)
	if err != nil {
		return err
	}
	c, err := character.FromRecord(record)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrMalformedSaveData, err)
	}

	fmt.Fprintf(s.out, "\nLoaded %s.\n\n", c.Name)
	fmt.Fprint(s.out, character.RenderSheet(&c))
	return nil
}

func (s *Shell) listSaves(ctx context.Context) error {
	infos, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprint(s.out, "No saved characters yet.\n")
		return nil
	}

	fmt.Fprint(s.out, "\nSaved characters:\n")
	for i, info := range infos {
		fmt.Fprintf(s.out, "%2d. %-20s age %2d  %s\n", i+1, info.Name, info.Age, info.Bracket)
	}
	return nil
}

func (s *Shell) deleteSave(ctx context.Context) error {
	info, err := s.pickSave(ctx)
	if err != nil || info == nil {
		return err
	}

	confirm, err := s.promptLine(fmt.Sprintf("Delete %s? (y/n): ", info.Name))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprint(s.out, "Kept.\n")
		return nil
	}

	if err := s.store.Delete(ctx, info.Name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Deleted %s.\n", info.Name)
	return nil
}

// pickSave lists saves and prompts for a selection. A nil info with nil
// error means there was nothing to pick.
func (s *Shell) pickSave(ctx context.Context) (*storage.SaveInfo, error) {
	infos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		fmt.Fprint(s.out, "No saved characters yet.\n")
		return nil, nil
	}

	fmt.Fprint(s.out, "\nSaved characters:\n")
	for i, info := range infos {
		fmt.Fprintf(s.out, "%2d. %-20s age %2d  %s\n", i+1, info.Name, info.Age, info.Bracket)
	}

	choice, err := s.promptInt("Character number (0 to cancel): ")
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(infos) {
		return nil, nil
	}
	return &infos[choice-1], nil
}

func (s *Shell) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptInt(prompt string) (int, error) {
	for {
		input, err := s.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprint(s.out, "Enter a number.\n")
			continue
		}
		return value, nil
	}
}
