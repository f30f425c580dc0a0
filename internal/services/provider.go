package services

import (
	"github.com/fableforge/gamemaster/internal/clock"
	"github.com/fableforge/gamemaster/internal/dice"
	"github.com/fableforge/gamemaster/internal/repositories/characters"
	abilityService "github.com/fableforge/gamemaster/internal/services/ability"
	characterService "github.com/fableforge/gamemaster/internal/services/character"
	combatService "github.com/fableforge/gamemaster/internal/services/combat"
	progressionService "github.com/fableforge/gamemaster/internal/services/progression"
	"github.com/fableforge/gamemaster/internal/uuid"
)

// Provider holds all engine service instances
type Provider struct {
	CharacterService   characterService.Service
	AbilityService     abilityService.Service
	ProgressionService progressionService.Service
	CombatService      combatService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository // Optional, defaults to in-memory
	Roller              dice.Roller           // Optional, defaults to random
	Clock               clock.Clock           // Optional, defaults to wall clock
	UUIDGenerator       uuid.Generator        // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
	})

	abilService := abilityService.NewService(&abilityService.ServiceConfig{
		CharacterService: charService,
		Roller:           cfg.Roller,
		Clock:            cfg.Clock,
	})

	progService := progressionService.NewService(&progressionService.ServiceConfig{
		CharacterService: charService,
	})

	combService := combatService.NewService(&combatService.ServiceConfig{
		Roller:        cfg.Roller,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return &Provider{
		CharacterService:   charService,
		AbilityService:     abilService,
		ProgressionService: progService,
		CombatService:      combService,
	}
}
