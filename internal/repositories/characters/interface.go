package characters

import (
	"context"

	"github.com/fableforge/gamemaster/internal/domain/character"
)

// Repository defines the interface for character persistence. Characters are
// keyed by player ID and are never deleted. Storage I/O failures surface as
// unavailable errors, distinct from not found.
type Repository interface {
	// Create stores a new character, failing if the player already has one
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by player ID
	Get(ctx context.Context, playerID string) (*character.Character, error)

	// Save upserts the full record, keyed by player ID
	Save(ctx context.Context, char *character.Character) error

	// List retrieves every stored character
	List(ctx context.Context) ([]*character.Character, error)
}
