package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	"go.uber.org/zap"
)

type DeckI interface {
	Cards() []models.Card
	Categories() []models.Category
	AddCard(ctx context.Context, in models.CardInput) (models.Card, error)
	AddCategory(ctx context.Context, name string) (models.Category, error)
}

type Result struct {
	Processed         int
	Created           int
	CategoriesCreated int
	Skipped           int
	Errors            []string
}

type Importer struct {
	deck DeckI
	log  *zap.Logger
}

func New(deck DeckI, log *zap.Logger) *Importer {
	return &Importer{deck: deck, log: log}
}

// Import adds every row as a card. Categories are matched by name
// case-insensitively and created on first use; rows that repeat an existing
// source/target pair are skipped.
func (i *Importer) Import(ctx context.Context, rows []Row) Result {
	result := Result{Errors: make([]string, 0)}

	categories := make(map[string]int64)
	for _, c := range i.deck.Categories() {
		categories[strings.ToLower(c.Name)] = c.ID
	}

	existing := make(map[string]bool)
	for _, c := range i.deck.Cards() {
		existing[pairKey(c.Source, c.Target)] = true
	}

	for _, row := range rows {
		result.Processed++

		if row.Source == "" || row.Target == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: source and target are required", row.Line))
			continue
		}

		key := pairKey(row.Source, row.Target)
		if existing[key] {
			result.Skipped++
			continue
		}

		categoryID := models.AllCategories
		if row.Category != "" {
			id, ok := categories[strings.ToLower(row.Category)]
			if !ok {
				category, err := i.deck.AddCategory(ctx, row.Category)
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
					continue
				}
				id = category.ID
				categories[strings.ToLower(row.Category)] = id
				result.CategoriesCreated++
			}
			categoryID = id
		}

		_, err := i.deck.AddCard(ctx, models.CardInput{Source: row.Source, Target: row.Target, CategoryID: categoryID})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}

		existing[key] = true
		result.Created++
	}

	i.log.Info("import finished",
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("categories_created", result.CategoriesCreated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))

	return result
}

func pairKey(source, target string) string {
	return strings.ToLower(source) + "\x00" + strings.ToLower(target)
}
