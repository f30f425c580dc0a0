package ability

import (
	"context"
	"time"
)

// Service defines the ability gate interface. All three abilities share one
// 60-second cooldown per caster; a rejected use carries the remaining wait
// in the error metadata.
type Service interface {
	// Heal restores 2d8 hit points to the caster
	Heal(ctx context.Context, input *HealInput) (*HealResult, error)

	// Invisibility marks the caster invisible for 60 seconds
	Invisibility(ctx context.Context, input *InvisibilityInput) (*InvisibilityResult, error)

	// DamageBolt deals 1d10 damage to a target character
	DamageBolt(ctx context.Context, input *DamageBoltInput) (*DamageBoltResult, error)
}

// HealInput identifies the caster
type HealInput struct {
	PlayerID string
}

// HealResult reports the healing applied
type HealResult struct {
	Healed int
	Rolls  []int
	NewHP  int
}

// InvisibilityInput identifies the caster
type InvisibilityInput struct {
	PlayerID string
}

// InvisibilityResult reports when the status wears off
type InvisibilityResult struct {
	Until time.Time
}

// DamageBoltInput identifies the caster and the target
type DamageBoltInput struct {
	PlayerID string
	TargetID string
}

// DamageBoltResult reports the damage dealt. TargetHP may be negative; the
// caller decides how to present defeat.
type DamageBoltResult struct {
	Damage   int
	Rolls    []int
	TargetHP int
}
