package progression

import (
	"context"

	chardomain "github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	charService "github.com/fableforge/gamemaster/internal/services/character"
)

// Service defines the leveling interface
type Service interface {
	// AddExperience grants experience and applies the level-transition rule
	AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceResult, error)
}

// AddExperienceInput identifies the player and the amount granted
type AddExperienceInput struct {
	PlayerID string
	Amount   int
}

// AddExperienceResult reports the sheet after the grant
type AddExperienceResult struct {
	Level     int
	XP        int
	LeveledUp bool
}

// service implements the Service interface
type service struct {
	characters charService.Service
}

// ServiceConfig holds configuration for the progression service
type ServiceConfig struct {
	CharacterService charService.Service // Required
}

// NewService creates a new progression service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	return &service{characters: cfg.CharacterService}
}

// AddExperience grants experience through the character store. Crossing the
// threshold yields exactly one level and an XP reset, no matter how large
// the amount was.
func (s *service) AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Amount < 0 {
		return nil, apperr.InvalidArgumentf("experience amount cannot be negative: %d", input.Amount)
	}

	var leveledUp bool
	char, err := s.characters.Mutate(ctx, input.PlayerID, func(c *chardomain.Character) error {
		leveledUp = c.GainExperience(input.Amount)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddExperienceResult{
		Level:     char.Level,
		XP:        char.XP,
		LeveledUp: leveledUp,
	}, nil
}
