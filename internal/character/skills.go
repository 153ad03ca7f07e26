package character

// Skill describes one entry in the fixed skill catalog.
type Skill struct {
	Key         string
	Name        string
	Attribute   string
	Description string
}

// catalog is the fixed skill table, in catalog (display) order. Skills are
// never added or removed at runtime; character skill maps may only reference
// keys listed here.
var catalog = []Skill{
	{Key: "actin", Name: "Actin'", Attribute: "smarts", Description: "Performance and deception through acting"},
	{Key: "agriculture", Name: "Agriculture", Attribute: "smarts", Description: "Farming, crops, and livestock knowledge"},
	{Key: "animals", Name: "Animals", Attribute: "smarts", Description: "Animal handling and knowledge"},
	{Key: "athletics", Name: "Athletics", Attribute: "vigor/finesse", Description: "Physical prowess and coordination"},
	{Key: "blacksmithin", Name: "Blacksmithin'", Attribute: "vigor", Description: "Forging and repairing metalwork"},
	{Key: "bows", Name: "Bows", Attribute: "finesse", Description: "Archery and bow weapons"},
	{Key: "carouse", Name: "Carouse", Attribute: "vigor", Description: "Drinking, partying, and carousing"},
	{Key: "cookin", Name: "Cookin'", Attribute: "smarts", Description: "Cooking and food preparation"},
	{Key: "deceive", Name: "Deceive", Attribute: "smarts", Description: "Lying and manipulation"},
	{Key: "doctorin", Name: "Doctorin'", Attribute: "smarts", Description: "Surgery and serious medical care"},
	{Key: "escamotage", Name: "Escamotage", Attribute: "finesse", Description: "Sleight of hand and pickpocketing"},
	{Key: "first_aid", Name: "First Aid", Attribute: "smarts", Description: "Basic medical treatment"},
	{Key: "fisticuffs", Name: "Fisticuffs", Attribute: "vigor", Description: "Unarmed combat"},
	{Key: "gamblin", Name: "Gamblin'", Attribute: "smarts", Description: "Cards, dice, and reading opponents"},
	{Key: "intimidation", Name: "Intimidation", Attribute: "vigor", Description: "Menace and coercion"},
	{Key: "language", Name: "Language", Attribute: "smarts", Description: "Foreign languages"},
	{Key: "locksmith", Name: "Locksmith", Attribute: "finesse", Description: "Lock picking and mechanisms"},
	{Key: "melee_weapons", Name: "Melee Weapons", Attribute: "vigor", Description: "Combat with melee weapons"},
	{Key: "navigation", Name: "Navigation", Attribute: "smarts", Description: "Finding the way by map, star, or trail"},
	{Key: "perception", Name: "Perception", Attribute: "smarts", Description: "Noticing what others miss"},
	{Key: "persuasion", Name: "Persuasion", Attribute: "smarts", Description: "Winning people over with words"},
	{Key: "prospectin", Name: "Prospectin'", Attribute: "smarts", Description: "Finding and assaying ore"},
	{Key: "ridin", Name: "Ridin'", Attribute: "finesse", Description: "Horsemanship and mounted work"},
	{Key: "ropin", Name: "Ropin'", Attribute: "finesse", Description: "Lassos, knots, and rigging"},
	{Key: "shootin", Name: "Shootin'", Attribute: "finesse", Description: "Pistols, rifles, and shotguns"},
	{Key: "sneakin", Name: "Sneakin'", Attribute: "finesse", Description: "Moving quiet and staying unseen"},
	{Key: "survival", Name: "Survival", Attribute: "smarts", Description: "Living off the land"},
	{Key: "swimmin", Name: "Swimmin'", Attribute: "vigor", Description: "Swimming and staying afloat"},
	{Key: "trackin", Name: "Trackin'", Attribute: "smarts", Description: "Following trails and sign"},
}

var catalogByKey = func() map[string]Skill {
	index := make(map[string]Skill, len(catalog))
	for _, skill := range catalog {
		index[skill.Key] = skill
	}
	return index
}()

// Catalog returns the fixed skill table in catalog order.
func Catalog() []Skill {
	return append([]Skill(nil), catalog...)
}

// SkillByKey looks up a catalog entry by its key.
func SkillByKey(key string) (Skill, bool) {
	skill, ok := catalogByKey[key]
	return skill, ok
}
