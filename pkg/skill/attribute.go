package skill

// Attribute keys every template understands. Skill files may carry any
// number of custom keys next to these; reach them through Settings.
const (
	AttrLevel    = "level"    // class level required to learn each skill level
	AttrCost     = "cost"     // skill points consumed per upgrade
	AttrCooldown = "cooldown" // seconds between uses
	AttrMana     = "mana"     // mana consumed per use
	AttrRange    = "range"    // maximum cast distance
)

// Reserved plain fields of a skill file, read outside the attribute
// scaling scheme.
const (
	keyType     = "type"
	keyMaxLevel = "max-level"
)
