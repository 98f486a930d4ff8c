package deck

import (
	"math/rand"

	"github.com/DanRulev/easyflash.git/internal/models"
)

const (
	// DefaultLearnedThreshold is the progress above which a card counts as learned.
	DefaultLearnedThreshold = 150
	// DefaultDifficultThreshold is the progress at or below which a card is drilled in difficult mode.
	DefaultDifficultThreshold = 2
)

// Filter returns the cards of the given category, or all cards for
// models.AllCategories. The result never aliases the input.
func Filter(cards []models.Card, categoryID int64) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if categoryID == models.AllCategories || c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out
}

// Difficult returns the cards with progress at or below threshold in random
// order. A nil rng uses the global source.
func Difficult(cards []models.Card, threshold int, rng *rand.Rand) []models.Card {
	out := make([]models.Card, 0)
	for _, c := range cards {
		if c.Progress <= threshold {
			out = append(out, c)
		}
	}

	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}

	return out
}

// Learned counts the cards with progress above threshold.
func Learned(cards []models.Card, threshold int) int {
	n := 0
	for _, c := range cards {
		if c.Progress > threshold {
			n++
		}
	}
	return n
}
