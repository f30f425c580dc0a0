package ability

import (
	"context"
	"time"

	"github.com/fableforge/gamemaster/internal/clock"
	"github.com/fableforge/gamemaster/internal/dice"
	chardomain "github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	charService "github.com/fableforge/gamemaster/internal/services/character"
)

const (
	// Cooldown is the minimum interval between successive special-ability
	// uses by the same character. It is checked lazily when an ability is
	// attempted, never expired by a timer.
	Cooldown = 60 * time.Second

	// InvisibilityDuration is how long the invisibility status lasts
	InvisibilityDuration = 60 * time.Second
)

// Heal restores 2d8 hit points, damage bolt deals 1d10
const (
	healDiceCount = 2
	healDiceSides = 8
	boltDiceSides = 10
)

// service implements the Service interface
type service struct {
	characters charService.Service
	roller     dice.Roller
	clock      clock.Clock
}

// ServiceConfig holds configuration for the ability service
type ServiceConfig struct {
	CharacterService charService.Service // Required
	Roller           dice.Roller         // Optional, defaults to random
	Clock            clock.Clock         // Optional, defaults to wall clock
}

// NewService creates a new ability service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	svc := &service{
		characters: cfg.CharacterService,
		roller:     cfg.Roller,
		clock:      cfg.Clock,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.clock == nil {
		svc.clock = clock.New()
	}

	return svc
}

// checkCooldown rejects the use when the shared 60-second window has not
// elapsed since the character's last ability use.
func checkCooldown(char *chardomain.Character, now time.Time) error {
	if char.LastAbilityUse == 0 {
		return nil
	}

	elapsed := now.Sub(time.Unix(char.LastAbilityUse, 0))
	if elapsed < Cooldown {
		return apperr.CooldownActive(Cooldown - elapsed)
	}
	return nil
}

// Heal restores hit points to the caster
func (s *service) Heal(ctx context.Context, input *HealInput) (*HealResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	now := s.clock.Now()
	var result *HealResult

	char, err := s.characters.Mutate(ctx, input.PlayerID, func(c *chardomain.Character) error {
		if err := checkCooldown(c, now); err != nil {
			return err
		}

		roll, rollErr := s.roller.Roll(healDiceCount, healDiceSides, 0)
		if rollErr != nil {
			return rollErr
		}

		c.HP += roll.Total
		c.LastAbilityUse = now.Unix()

		result = &HealResult{
			Healed: roll.Total,
			Rolls:  roll.Rolls,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.NewHP = char.HP
	return result, nil
}

// Invisibility marks the caster invisible for the status duration. The
// stamp is persisted observable state; nothing else in the engine reads it.
func (s *service) Invisibility(ctx context.Context, input *InvisibilityInput) (*InvisibilityResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	now := s.clock.Now()
	until := now.Add(InvisibilityDuration)

	_, err := s.characters.Mutate(ctx, input.PlayerID, func(c *chardomain.Character) error {
		if err := checkCooldown(c, now); err != nil {
			return err
		}

		c.InvisibleUntil = until.Unix()
		c.LastAbilityUse = now.Unix()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &InvisibilityResult{Until: until}, nil
}

// DamageBolt deals damage to another character. The caster's cooldown stamp
// and the target's hit points are two independent per-key mutations; no
// cross-record transaction ties them together.
func (s *service) DamageBolt(ctx context.Context, input *DamageBoltInput) (*DamageBoltResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.TargetID == "" {
		return nil, apperr.InvalidArgument("target player ID is required")
	}

	// The target must exist before the caster commits the cooldown
	if _, err := s.characters.Get(ctx, input.TargetID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.TargetNotFoundf("target '%s' has no character", input.TargetID).
				WithMeta("target_id", input.TargetID)
		}
		return nil, err
	}

	now := s.clock.Now()

	_, err := s.characters.Mutate(ctx, input.PlayerID, func(c *chardomain.Character) error {
		if err := checkCooldown(c, now); err != nil {
			return err
		}
		c.LastAbilityUse = now.Unix()
		return nil
	})
	if err != nil {
		return nil, err
	}

	roll, err := s.roller.Roll(1, boltDiceSides, 0)
	if err != nil {
		return nil, err
	}

	// Hit points are not floored; defeat is the caller's display concern
	target, err := s.characters.Mutate(ctx, input.TargetID, func(c *chardomain.Character) error {
		c.HP -= roll.Total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DamageBoltResult{
		Damage:   roll.Total,
		Rolls:    roll.Rolls,
		TargetHP: target.HP,
	}, nil
}
