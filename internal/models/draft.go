package models

type DraftAction int

const (
	DraftNone DraftAction = iota
	DraftAddWord
	DraftEditWord
	DraftAddCategory
	DraftRenameCategory
)

// Draft is a multi-step input a chat user is in the middle of. For word
// drafts the next expected field is the first empty one of Source, Target.
type Draft struct {
	Action     DraftAction `json:"action"`
	CardID     int64       `json:"cardId,omitempty"`
	CategoryID int64       `json:"categoryId,omitempty"`
	Source     string      `json:"source,omitempty"`
	Target     string      `json:"target,omitempty"`
}
