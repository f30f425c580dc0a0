package testutils

import (
	"github.com/fableforge/gamemaster/internal/domain/character"
)

// CreateTestCharacter creates a default sheet with the given identity
func CreateTestCharacter(playerID, name string) *character.Character {
	return character.New(playerID, name)
}

// CreateTestCharacterWithDexterity creates a sheet with a specific dexterity,
// handy for deterministic initiative assertions
func CreateTestCharacterWithDexterity(playerID, name string, dexterity int) *character.Character {
	char := character.New(playerID, name)
	char.Dexterity = dexterity
	return char
}
