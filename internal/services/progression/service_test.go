package progression_test

import (
	"context"
	"testing"

	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/fableforge/gamemaster/internal/repositories/characters"
	charService "github.com/fableforge/gamemaster/internal/services/character"
	"github.com/fableforge/gamemaster/internal/services/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture() (charService.Service, progression.Service) {
	chars := charService.NewService(&charService.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
	})
	svc := progression.NewService(&progression.ServiceConfig{
		CharacterService: chars,
	})
	return chars, svc
}

func TestAddExperience(t *testing.T) {
	tests := []struct {
		name        string
		grants      []int
		wantLevel   int
		wantXP      int
		wantLeveled bool
	}{
		{
			name:        "below threshold accumulates",
			grants:      []int{40, 40},
			wantLevel:   1,
			wantXP:      80,
			wantLeveled: false,
		},
		{
			name:        "exact threshold levels and resets",
			grants:      []int{100},
			wantLevel:   2,
			wantXP:      0,
			wantLeveled: true,
		},
		{
			name:        "overshoot is discarded",
			grants:      []int{90, 50},
			wantLevel:   2,
			wantXP:      0,
			wantLeveled: true,
		},
		{
			name:        "huge grant yields a single level",
			grants:      []int{1000},
			wantLevel:   2,
			wantXP:      0,
			wantLeveled: true,
		},
		{
			name:        "two crossings give two levels",
			grants:      []int{100, 60, 60},
			wantLevel:   3,
			wantXP:      0,
			wantLeveled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			chars, svc := newFixture()

			_, err := chars.Create(ctx, "player-1", "Aragorn")
			require.NoError(t, err)

			var result *progression.AddExperienceResult
			for _, amount := range tt.grants {
				result, err = svc.AddExperience(ctx, &progression.AddExperienceInput{
					PlayerID: "player-1",
					Amount:   amount,
				})
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantLevel, result.Level)
			assert.Equal(t, tt.wantXP, result.XP)
			assert.Equal(t, tt.wantLeveled, result.LeveledUp)

			got, err := chars.Get(ctx, "player-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantXP, got.XP)
		})
	}
}

func TestAddExperience_NegativeAmount(t *testing.T) {
	ctx := context.Background()
	chars, svc := newFixture()

	_, err := chars.Create(ctx, "player-1", "Aragorn")
	require.NoError(t, err)

	_, err = svc.AddExperience(ctx, &progression.AddExperienceInput{
		PlayerID: "player-1",
		Amount:   -10,
	})
	assert.True(t, apperr.IsInvalidArgument(err))

	got, err := chars.Get(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.XP, "a rejected grant leaves the sheet untouched")
}

func TestAddExperience_CharacterNotFound(t *testing.T) {
	ctx := context.Background()
	_, svc := newFixture()

	_, err := svc.AddExperience(ctx, &progression.AddExperienceInput{
		PlayerID: "missing",
		Amount:   50,
	})
	assert.True(t, apperr.IsNotFound(err))
}
