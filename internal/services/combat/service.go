package combat

import (
	"context"
	"sync"

	"github.com/fableforge/gamemaster/internal/dice"
	chardomain "github.com/fableforge/gamemaster/internal/domain/character"
	combatdomain "github.com/fableforge/gamemaster/internal/domain/combat"
	apperr "github.com/fableforge/gamemaster/internal/errors"
	"github.com/fableforge/gamemaster/internal/uuid"
)

// Service manages combat sessions, one per guild, held only in memory.
// A session lives from StartCombat until the next StartCombat for that
// guild or a process restart.
type Service interface {
	// StartCombat opens a session with an empty roster, unconditionally
	// discarding any prior session for the guild
	StartCombat(ctx context.Context, guildID string) error

	// Join rolls initiative for a character and appends a roster entry
	Join(ctx context.Context, input *JoinInput) (*JoinResult, error)

	// AdvanceTurn re-sorts the roster and returns the current participant,
	// then moves the cursor forward by one
	AdvanceTurn(ctx context.Context, guildID string) (*combatdomain.Participant, error)
}

// JoinInput carries the joining character and the name shown in the roster
type JoinInput struct {
	GuildID     string
	Character   *chardomain.Character
	DisplayName string
}

// JoinResult reports the rolled initiative
type JoinResult struct {
	Participant *combatdomain.Participant
	Initiative  int
}

// guildSession pairs a session with the lock serializing its mutations
type guildSession struct {
	mu      sync.Mutex
	session *combatdomain.Session
}

// service implements the Service interface
type service struct {
	roller  dice.Roller
	uuidGen uuid.Generator

	mu       sync.RWMutex
	sessions map[string]*guildSession
}

// ServiceConfig holds configuration for the combat service
type ServiceConfig struct {
	Roller        dice.Roller    // Optional, defaults to random
	UUIDGenerator uuid.Generator // Optional
}

// NewService creates a new combat session manager
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		sessions: make(map[string]*guildSession),
	}

	if cfg != nil {
		svc.roller = cfg.Roller
		svc.uuidGen = cfg.UUIDGenerator
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGenerator()
	}

	return svc
}

// StartCombat replaces any existing session for the guild with a fresh one
func (s *service) StartCombat(ctx context.Context, guildID string) error {
	if guildID == "" {
		return apperr.InvalidArgument("guild ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[guildID] = &guildSession{
		session: combatdomain.NewSession(guildID),
	}
	return nil
}

// get returns the live session for a guild
func (s *service) get(guildID string) (*guildSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gs, ok := s.sessions[guildID]
	if !ok {
		return nil, apperr.NotFoundf("no combat session for guild '%s'", guildID).
			WithMeta("guild_id", guildID)
	}
	return gs, nil
}

// Join computes initiative as a d20 roll plus the character's raw dexterity
// score (not the derived modifier) and appends the entry to the roster.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.Character == nil {
		return nil, apperr.InvalidArgument("character is required")
	}

	name := input.DisplayName
	if name == "" {
		name = input.Character.Name
	}

	gs, err := s.get(input.GuildID)
	if err != nil {
		return nil, err
	}

	roll, err := s.roller.Roll(1, 20, input.Character.Dexterity)
	if err != nil {
		return nil, err
	}

	participant := &combatdomain.Participant{
		ID:         s.uuidGen.New(),
		Name:       name,
		Initiative: roll.Total,
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.session.AddParticipant(participant)

	return &JoinResult{
		Participant: participant,
		Initiative:  participant.Initiative,
	}, nil
}

// AdvanceTurn re-sorts the roster by initiative on every call, so a
// mid-encounter join reorders upcoming turns without touching the cursor.
func (s *service) AdvanceTurn(ctx context.Context, guildID string) (*combatdomain.Participant, error) {
	gs, err := s.get(guildID)
	if err != nil {
		return nil, err
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	session := gs.session
	if len(session.Participants) == 0 {
		return nil, apperr.NoParticipants("no participants in the combat").
			WithMeta("guild_id", guildID)
	}

	session.SortByInitiative()

	current := session.Participants[session.Turn%len(session.Participants)]
	session.Turn++

	currentCopy := *current
	return &currentCopy, nil
}
