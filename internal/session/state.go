package session

import "github.com/DanRulev/easyflash.git/internal/models"

// State is the serialisable form of a Session.
type State struct {
	ID       string        `json:"id,omitempty"`
	Mode     Mode          `json:"mode,omitempty"`
	Phase    Phase         `json:"phase"`
	Cards    []models.Card `json:"cards,omitempty"`
	Position int           `json:"position"`
	Revealed bool          `json:"revealed"`
	Tally    Tally         `json:"tally"`
}

func (s *Session) State() State {
	return State{
		ID:       s.id,
		Mode:     s.mode,
		Phase:    s.phase,
		Cards:    s.Cards(),
		Position: s.pos,
		Revealed: s.revealed,
		Tally:    s.tally,
	}
}

// Restore rebuilds a session from st. A state that breaks the session
// invariants yields an idle session.
func Restore(st State) *Session {
	switch st.Phase {
	case Idle:
		return New()
	case Active, Complete:
		if len(st.Cards) == 0 || st.Position < 0 || st.Position >= len(st.Cards) {
			return New()
		}
	default:
		return New()
	}

	return &Session{
		id:       st.ID,
		mode:     st.Mode,
		phase:    st.Phase,
		cards:    append([]models.Card(nil), st.Cards...),
		pos:      st.Position,
		revealed: st.Revealed && st.Phase == Active,
		tally:    st.Tally,
	}
}
