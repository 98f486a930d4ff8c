package models

// AllCategories is the category id that disables category filtering.
const AllCategories int64 = 0

type Card struct {
	ID         int64  `json:"id"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	CategoryID int64  `json:"categoryId"`
	Progress   int    `json:"progress"`
}

// CardInput holds the editable fields of a card, sent on create and update.
type CardInput struct {
	Source     string `json:"source" validate:"required"`
	Target     string `json:"target" validate:"required"`
	CategoryID int64  `json:"categoryId" validate:"min=0"`
}

func (c Card) Input() CardInput {
	return CardInput{
		Source:     c.Source,
		Target:     c.Target,
		CategoryID: c.CategoryID,
	}
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type Streak struct {
	Count int `json:"count"`
}
