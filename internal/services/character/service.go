package character

import (
	"context"
	"sync"

	chardomain "github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	characterRepo "github.com/fableforge/gamemaster/internal/repositories/characters"
)

// Repository is an alias for the character repository interface
type Repository = characterRepo.Repository

// MutateFunc transforms a character in place. Returning an error aborts the
// write and the error is surfaced to the caller unchanged.
type MutateFunc func(*chardomain.Character) error

// Service defines the character store interface. Every stat change goes
// through Mutate so that writes for the same player ID serialize.
type Service interface {
	// Create builds a fresh default sheet for the player. Re-creating
	// replaces any existing sheet (the most common behavior across the
	// bot's command variants); it never fails with already exists.
	Create(ctx context.Context, playerID, name string) (*chardomain.Character, error)

	// Get retrieves a character by player ID
	Get(ctx context.Context, playerID string) (*chardomain.Character, error)

	// Save upserts the full record
	Save(ctx context.Context, char *chardomain.Character) error

	// List retrieves every stored character
	List(ctx context.Context) ([]*chardomain.Character, error)

	// Mutate loads the record, applies fn, and persists the result as one
	// logical operation. Concurrent mutations of the same player ID
	// serialize; different player IDs proceed independently.
	Mutate(ctx context.Context, playerID string, fn MutateFunc) (*chardomain.Character, error)
}

// service implements the Service interface
type service struct {
	repository Repository

	// mu guards the lock table, not the records themselves
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
		locks:      make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex dedicated to a player ID, creating it on first
// use. Locks are never dropped; the table grows with the player base, which
// stays small enough not to matter.
func (s *service) lockFor(playerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[playerID] = lock
	}
	return lock
}

// Create builds and stores a fresh default sheet, replacing any prior one
func (s *service) Create(ctx context.Context, playerID, name string) (*chardomain.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}
	if name == "" {
		return nil, apperr.InvalidArgument("character name is required")
	}

	lock := s.lockFor(playerID)
	lock.Lock()
	defer lock.Unlock()

	char := chardomain.New(playerID, name)
	if err := s.repository.Save(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to store new character")
	}

	return char, nil
}

// Get retrieves a character by player ID
func (s *service) Get(ctx context.Context, playerID string) (*chardomain.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	return s.repository.Get(ctx, playerID)
}

// Save upserts the full record
func (s *service) Save(ctx context.Context, char *chardomain.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}

	lock := s.lockFor(char.PlayerID)
	lock.Lock()
	defer lock.Unlock()

	return s.repository.Save(ctx, char)
}

// List retrieves every stored character
func (s *service) List(ctx context.Context) ([]*chardomain.Character, error) {
	return s.repository.List(ctx)
}

// Mutate performs a load-transform-persist cycle under the player's lock
func (s *service) Mutate(ctx context.Context, playerID string, fn MutateFunc) (*chardomain.Character, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}
	if fn == nil {
		return nil, apperr.InvalidArgument("mutate function is required")
	}

	lock := s.lockFor(playerID)
	lock.Lock()
	defer lock.Unlock()

	char, err := s.repository.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := fn(char); err != nil {
		return nil, err
	}

	if err := s.repository.Save(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to persist mutated character")
	}

	return char, nil
}
