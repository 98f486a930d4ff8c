package session

import (
	"encoding"
	"fmt"
	"math"
)

// Phase is the lifecycle stage of a drill.
type Phase int

const (
	Idle Phase = iota
	Active
	Complete
)

var (
	phaseNames  = [...]string{Idle: "idle", Active: "active", Complete: "complete"}
	phaseByName = map[string]Phase{
		"idle":     Idle,
		"active":   Active,
		"complete": Complete,
	}
)

var (
	_ fmt.Stringer             = Phase(0)
	_ encoding.TextMarshaler   = Phase(0)
	_ encoding.TextUnmarshaler = (*Phase)(nil)
)

func (p Phase) isValid() bool {
	return p >= Idle && p <= Complete
}

func (p Phase) String() string {
	if p.isValid() {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	if !p.isValid() {
		return nil, fmt.Errorf("session: invalid phase: %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	v, ok := phaseByName[string(text)]
	if !ok {
		return fmt.Errorf("session: invalid phase: %q", text)
	}
	*p = v
	return nil
}

// Mode tells how the working set was selected.
type Mode string

const (
	ModeNormal    Mode = "normal"
	ModeDifficult Mode = "difficult"
)

// Tally counts accepted ratings per bucket.
type Tally struct {
	Weak   int `json:"weak"`
	Medium int `json:"medium"`
	Strong int `json:"strong"`
}

func (t Tally) Total() int {
	return t.Weak + t.Medium + t.Strong
}

// Accuracy is the rounded share of strong ratings in percent, 0 for an empty tally.
func (t Tally) Accuracy() int {
	total := t.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(t.Strong) * 100 / float64(total)))
}

func (t *Tally) add(r Rating) bool {
	switch r {
	case Weak:
		t.Weak++
	case Medium:
		t.Medium++
	case Strong:
		t.Strong++
	default:
		return false
	}
	return true
}
