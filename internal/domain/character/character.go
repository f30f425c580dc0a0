package character

// Default values for a freshly created character sheet
const (
	DefaultRace         = "Human"
	DefaultClass        = "Fighter"
	DefaultHP           = 10
	DefaultAbilityScore = 10

	// LevelUpXP is the experience threshold that triggers a level gain
	LevelUpXP = 100
)

// Character is a player's sheet, keyed by the stable player ID. It is the
// sole source of truth for stats; combat rosters only snapshot from it.
type Character struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Race     string `json:"race"`
	Class    string `json:"class"`

	Level int `json:"level"`
	XP    int `json:"xp"`

	// HP is signed and never clamped; negative values represent defeat,
	// which is a display concern for the caller.
	HP int `json:"hp"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`

	// InvisibleUntil is a Unix-seconds timestamp; 0 means not invisible.
	// Written by the invisibility ability, consulted nowhere else.
	InvisibleUntil int64 `json:"invisible_until"`

	// LastAbilityUse is a Unix-seconds timestamp of the most recent special
	// ability use; 0 means never. Drives the shared cooldown gate.
	LastAbilityUse int64 `json:"last_ability_use"`
}

// New creates a fresh default sheet for the given player
func New(playerID, name string) *Character {
	return &Character{
		PlayerID:     playerID,
		Name:         name,
		Race:         DefaultRace,
		Class:        DefaultClass,
		Level:        1,
		XP:           0,
		HP:           DefaultHP,
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// GainExperience adds experience and applies the level-transition rule:
// crossing the threshold grants exactly one level and resets XP to zero.
// The overshoot is discarded no matter how large the amount was.
// Returns true when a level was gained.
func (c *Character) GainExperience(amount int) bool {
	c.XP += amount
	if c.XP < LevelUpXP {
		return false
	}

	c.Level++
	c.XP = 0
	return true
}
