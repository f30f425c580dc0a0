package combat

import "sort"

// Participant is one roster entry in a combat session. It is a name plus an
// initiative snapshot taken at join time, not a reference to a character;
// later stat changes do not affect the roster.
type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initiative int    `json:"initiative"`
}

// Session is the combat state for one group, from StartCombat until the next
// StartCombat for that group. Held only in memory, never persisted.
type Session struct {
	GuildID      string         `json:"guild_id"`
	Participants []*Participant `json:"participants"`

	// Turn is a monotonically increasing cursor; its value modulo the
	// roster size selects the current actor on each advance.
	Turn int `json:"turn"`
}

// NewSession creates an empty session for a group
func NewSession(guildID string) *Session {
	return &Session{
		GuildID:      guildID,
		Participants: []*Participant{},
	}
}

// AddParticipant appends a roster entry. Duplicate names are allowed and
// create separate entries.
func (s *Session) AddParticipant(p *Participant) {
	s.Participants = append(s.Participants, p)
}

// SortByInitiative orders the roster by initiative, highest first. The sort
// is stable so ties keep their relative join order, and re-sorting between
// joins is idempotent.
func (s *Session) SortByInitiative() {
	sort.SliceStable(s.Participants, func(i, j int) bool {
		return s.Participants[i].Initiative > s.Participants[j].Initiative
	})
}
