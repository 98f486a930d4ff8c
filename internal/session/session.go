// Package session holds the drill state machine: a fixed working set of
// cards walked one by one, each revealed and then rated.
//
//	Idle ──Start──► Active ──last Rate──► Complete ──Retry──► Active
//	 ▲                 │                      │
//	 └─────Abandon─────┴──────────────────────┘
//
// Inside Active the current card is either hidden or revealed; only a
// revealed card can be rated. Calls that are not valid in the current state
// are no-ops.
package session

import (
	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/google/uuid"
)

type Session struct {
	id       string
	mode     Mode
	phase    Phase
	cards    []models.Card
	pos      int
	revealed bool
	tally    Tally
}

func New() *Session {
	return &Session{}
}

// Start captures cards as the working set. An empty set is refused and the
// session stays where it was.
func (s *Session) Start(mode Mode, cards []models.Card) error {
	if s.phase == Active {
		return ErrSessionActive
	}
	if len(cards) == 0 {
		return ErrEmptyWorkingSet
	}

	s.id = uuid.NewString()
	s.mode = mode
	s.cards = append([]models.Card(nil), cards...)
	s.pos = 0
	s.revealed = false
	s.tally = Tally{}
	s.phase = Active

	return nil
}

// Reveal shows the target side of the current card. It reports whether the
// state changed.
func (s *Session) Reveal() bool {
	if s.phase != Active || s.revealed {
		return false
	}
	s.revealed = true
	return true
}

// Rate records r for the revealed current card and moves on. It returns the
// rated card and true when the rating was accepted; otherwise nothing changes.
func (s *Session) Rate(r Rating) (models.Card, bool) {
	if s.phase != Active || !s.revealed || !r.IsValid() {
		return models.Card{}, false
	}

	card := s.cards[s.pos]
	s.tally.add(r)
	s.revealed = false

	if s.pos+1 == len(s.cards) {
		s.phase = Complete
	} else {
		s.pos++
	}

	return card, true
}

// Retry replays the same working set from the start. The tally accumulates
// across retries.
func (s *Session) Retry() error {
	if s.phase != Complete {
		return ErrNotComplete
	}
	s.pos = 0
	s.revealed = false
	s.phase = Active
	return nil
}

func (s *Session) Abandon() {
	*s = Session{}
}

func (s *Session) Current() (models.Card, bool) {
	if s.phase != Active {
		return models.Card{}, false
	}
	return s.cards[s.pos], true
}

func (s *Session) ID() string { return s.id }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Position() int { return s.pos }
func (s *Session) Len() int { return len(s.cards) }
func (s *Session) Revealed() bool { return s.revealed }
func (s *Session) Tally() Tally { return s.tally }
func (s *Session) Accuracy() int { return s.tally.Accuracy() }
func (s *Session) Cards() []models.Card {
	return append([]models.Card(nil), s.cards...)
}
