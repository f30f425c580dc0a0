package combat_test

import (
	"context"
	"testing"

	"github.com/fableforge/gamemaster/internal/dice"
	chardomain "github.com/fableforge/gamemaster/internal/domain/character"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/fableforge/gamemaster/internal/services/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(roller dice.Roller) combat.Service {
	return combat.NewService(&combat.ServiceConfig{
		Roller: roller,
	})
}

// fighter builds a sheet whose dexterity is zero so the initiative equals the
// predetermined d20 roll exactly.
func fighter(playerID, name string) *chardomain.Character {
	char := chardomain.New(playerID, name)
	char.Dexterity = 0
	return char
}

func join(t *testing.T, svc combat.Service, guildID string, char *chardomain.Character) *combat.JoinResult {
	t.Helper()
	result, err := svc.Join(context.Background(), &combat.JoinInput{
		GuildID:   guildID,
		Character: char,
	})
	require.NoError(t, err)
	return result
}

func TestJoin_InitiativeAddsRawDexterity(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	char := chardomain.New("player-1", "Aragorn")
	char.Dexterity = 14

	roller.SetRolls([]int{11})
	result := join(t, svc, "guild-1", char)

	assert.Equal(t, 25, result.Initiative, "initiative is the d20 roll plus the full dexterity score")
	assert.Equal(t, "Aragorn", result.Participant.Name)
	assert.NotEmpty(t, result.Participant.ID)
}

func TestJoin_NoSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(dice.NewMockRoller())

	_, err := svc.Join(ctx, &combat.JoinInput{
		GuildID:   "guild-1",
		Character: fighter("player-1", "Aragorn"),
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdvanceTurn_OrderAndWraparound(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	roller.SetRolls([]int{5, 12, 7})
	join(t, svc, "guild-1", fighter("player-1", "Aragorn"))
	join(t, svc, "guild-1", fighter("player-2", "Borin"))
	join(t, svc, "guild-1", fighter("player-3", "Cora"))

	wantNames := []string{"Borin", "Cora", "Aragorn", "Borin", "Cora"}
	for i, want := range wantNames {
		current, err := svc.AdvanceTurn(ctx, "guild-1")
		require.NoError(t, err)
		assert.Equal(t, want, current.Name, "turn %d", i)
	}
}

func TestAdvanceTurn_MidEncounterJoinReorders(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	roller.SetRolls([]int{12, 7})
	join(t, svc, "guild-1", fighter("player-1", "Aragorn"))
	join(t, svc, "guild-1", fighter("player-2", "Borin"))

	current, err := svc.AdvanceTurn(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", current.Name)

	// A latecomer with top initiative lands ahead of the cursor
	roller.SetRolls([]int{18})
	join(t, svc, "guild-1", fighter("player-3", "Cora"))

	current, err = svc.AdvanceTurn(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", current.Name, "cursor position 1 now points at Aragorn after the re-sort")

	current, err = svc.AdvanceTurn(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "Borin", current.Name)

	current, err = svc.AdvanceTurn(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "Cora", current.Name, "the cursor wraps to the new leader")
}

func TestAdvanceTurn_TiesKeepJoinOrder(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	roller.SetRolls([]int{9, 9, 9})
	join(t, svc, "guild-1", fighter("player-1", "Aragorn"))
	join(t, svc, "guild-1", fighter("player-2", "Borin"))
	join(t, svc, "guild-1", fighter("player-3", "Cora"))

	for _, want := range []string{"Aragorn", "Borin", "Cora"} {
		current, err := svc.AdvanceTurn(ctx, "guild-1")
		require.NoError(t, err)
		assert.Equal(t, want, current.Name)
	}
}

func TestAdvanceTurn_NoParticipants(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(dice.NewMockRoller())

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	_, err := svc.AdvanceTurn(ctx, "guild-1")
	assert.True(t, apperr.IsNoParticipants(err))
}

func TestAdvanceTurn_NoSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(dice.NewMockRoller())

	_, err := svc.AdvanceTurn(ctx, "guild-1")
	assert.True(t, apperr.IsNotFound(err))
}

func TestStartCombat_ReplacesRoster(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))
	roller.SetRolls([]int{10})
	join(t, svc, "guild-1", fighter("player-1", "Aragorn"))

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))

	_, err := svc.AdvanceTurn(ctx, "guild-1")
	assert.True(t, apperr.IsNoParticipants(err), "a restart must discard the old roster")
}

func TestSessions_IsolatedPerGuild(t *testing.T) {
	ctx := context.Background()
	roller := dice.NewMockRoller()
	svc := newTestService(roller)

	require.NoError(t, svc.StartCombat(ctx, "guild-1"))
	require.NoError(t, svc.StartCombat(ctx, "guild-2"))

	roller.SetRolls([]int{10})
	join(t, svc, "guild-1", fighter("player-1", "Aragorn"))

	current, err := svc.AdvanceTurn(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, "Aragorn", current.Name)

	_, err = svc.AdvanceTurn(ctx, "guild-2")
	assert.True(t, apperr.IsNoParticipants(err), "guild-2's roster is independent")
}
