package session

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Rating is the user's self-assessment of a revealed card. Its numeric value
// is the number of progress points credited to the card.
type Rating int

const (
	Weak   Rating = 1
	Medium Rating = 3
	Strong Rating = 5
)

var ratingByName = map[string]Rating{
	"weak":   Weak,
	"medium": Medium,
	"strong": Strong,
}

var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

func (r Rating) IsValid() bool {
	return r == Weak || r == Medium || r == Strong
}

// Points is the progress delta credited for this rating.
func (r Rating) Points() int {
	return int(r)
}

func (r Rating) String() string {
	switch r {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// ParseRating accepts a bucket name ("weak", "medium", "strong") or its
// point value ("1", "3", "5").
func ParseRating(s string) (Rating, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if r, ok := ratingByName[s]; ok {
		return r, nil
	}
	switch s {
	case "1":
		return Weak, nil
	case "3":
		return Medium, nil
	case "5":
		return Strong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
}

func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	v, ok := ratingByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	*r = v
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}
	return r.UnmarshalText([]byte(s))
}
