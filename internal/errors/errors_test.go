package errors_test

import (
	"fmt"
	"testing"
	"time"

	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.NotFoundf("character '%s' not found", "player-1").
		WithMeta("player_id", "player-1")

	wrapped := apperr.Wrap(base, "loading sheet")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "player-1", apperr.GetMeta(wrapped)["player_id"])
	assert.Contains(t, wrapped.Error(), "loading sheet")
}

func TestWrap_UnknownForForeignErrors(t *testing.T) {
	wrapped := apperr.Wrap(fmt.Errorf("connection refused"), "pinging store")
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := apperr.WrapWithCode(fmt.Errorf("dial tcp: refused"), apperr.CodeUnavailable, "redis unreachable")

	assert.True(t, apperr.IsUnavailable(wrapped))
	assert.Contains(t, wrapped.Error(), "dial tcp")
}

func TestCooldownActive(t *testing.T) {
	err := apperr.CooldownActive(42 * time.Second)

	assert.True(t, apperr.IsCooldownActive(err))
	assert.Equal(t, 42*time.Second, apperr.CooldownRemaining(err))
	assert.Contains(t, err.Error(), "42s")
}

func TestCooldownRemaining_ZeroForOtherErrors(t *testing.T) {
	assert.Zero(t, apperr.CooldownRemaining(apperr.NotFound("nope")))
	assert.Zero(t, apperr.CooldownRemaining(nil))
}

func TestGetCode_ForeignError(t *testing.T) {
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(fmt.Errorf("plain")))
}
