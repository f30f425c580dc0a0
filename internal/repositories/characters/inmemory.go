package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.PlayerID]; exists {
		return apperr.AlreadyExistsf("character for player '%s' already exists", char.PlayerID).
			WithMeta("player_id", char.PlayerID)
	}

	// Store a copy to avoid external modifications
	charCopy := *char
	r.characters[char.PlayerID] = &charCopy

	return nil
}

// Get retrieves a character by player ID
func (r *InMemoryRepository) Get(ctx context.Context, playerID string) (*character.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[playerID]
	if !exists {
		return nil, apperr.NotFoundf("character for player '%s' not found", playerID).
			WithMeta("player_id", playerID)
	}

	// Return a copy to avoid external modifications
	charCopy := *char
	return &charCopy, nil
}

// Save upserts the full record
func (r *InMemoryRepository) Save(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.PlayerID == "" {
		return apperr.InvalidArgument("character player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	charCopy := *char
	r.characters[char.PlayerID] = &charCopy

	return nil
}

// List retrieves every stored character, ordered by player ID
func (r *InMemoryRepository) List(ctx context.Context) ([]*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*character.Character, 0, len(r.characters))
	for _, char := range r.characters {
		charCopy := *char
		result = append(result, &charCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PlayerID < result[j].PlayerID
	})

	return result, nil
}
