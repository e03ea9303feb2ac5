package entities

// StatType selects which stat an evolution raises. Unknown input is kept
// as StatUnknown: the evolution is still charged and levels the character,
// but raises no stat.
type StatType int

// Stat variants
const (
	StatUnknown StatType = iota
	StatStrength
	StatAgility
	StatIntelligence
)

var statNames = map[string]StatType{
	"strength":     StatStrength,
	"agility":      StatAgility,
	"intelligence": StatIntelligence,
}

// ParseStatType matches the exact lower-case stat literals
func ParseStatType(s string) StatType {
	if stat, ok := statNames[s]; ok {
		return stat
	}
	return StatUnknown
}

// String returns the stat literal, or "unknown"
func (s StatType) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatAgility:
		return "agility"
	case StatIntelligence:
		return "intelligence"
	default:
		return "unknown"
	}
}
