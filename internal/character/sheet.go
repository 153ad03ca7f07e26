package character

import (
	"fmt"
	"strings"
)

// RenderSheet assembles a read-only character sheet with a stable field
// order: attributes first, then bracket, then skills in catalog order,
// then equipment in insertion order.
func RenderSheet(c *Character) string {
	var sheet strings.Builder

	fmt.Fprintf(&sheet, "%s\n", strings.ToUpper(c.Name))
	fmt.Fprintf(&sheet, "Age %d\n", c.Age)
	sheet.WriteString("\nAttributes\n")
	fmt.Fprintf(&sheet, "  Vigor   %2d (%+d)\n", c.Vigor, AttributeModifier(c.Vigor))
	fmt.Fprintf(&sheet, "  Finesse %2d (%+d)\n", c.Finesse, AttributeModifier(c.Finesse))
	fmt.Fprintf(&sheet, "  Smarts  %2d (%+d)\n", c.Smarts, AttributeModifier(c.Smarts))

	fmt.Fprintf(&sheet, "\nBracket: %s\n", c.Bracket)
	fmt.Fprintf(&sheet, "Skill points remaining: %d\n", c.SkillPoints)

	sheet.WriteString("\nSkills\n")
	any := false
	for _, skill := range catalog {
		level := c.Skills[skill.Key]
		if level == 0 {
			continue
		}
		any = true
		fmt.Fprintf(&sheet, "  %-15s %d [%s]\n", skill.Name, level, skill.Attribute)
	}
	if !any {
		sheet.WriteString("  (none)\n")
	}

	sheet.WriteString("\nEquipment\n")
	if len(c.Equipment) == 0 {
		sheet.WriteString("  (none)\n")
	}
	for _, item := range c.Equipment {
		fmt.Fprintf(&sheet, "  %s\n", item)
	}

	fmt.Fprintf(&sheet, "\nDollars: $%d\n", c.Dollars)
	fmt.Fprintf(&sheet, "Hit points: %d/%d\n", c.HitPoints, c.MaxHitPoints)

	return sheet.String()
}
