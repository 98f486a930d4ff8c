package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const wordsPageSize = 5

// keepValue leaves a field unchanged while editing a word.
const keepValue = "-"

type CardSI interface {
	Card(id int64) (models.Card, bool)
	Categories() []models.Category
	Category(id int64) (models.Category, bool)
	CategoryRequired() bool
	Filtered(ctx context.Context, userID int64) ([]models.Card, error)
	SelectedCategory(ctx context.Context, userID int64) (int64, error)
	AddCard(ctx context.Context, in models.CardInput) (models.Card, error)
	UpdateCard(ctx context.Context, id int64, in models.CardInput) (models.Card, error)
	DeleteCard(ctx context.Context, id int64) error
}

type CardT struct {
	bot     BotSender
	drafts  *draftCache
	service CardSI
	log     *zap.Logger
}

func NewCardTAPI(bot BotSender, drafts DraftStoreI, service CardSI, log *zap.Logger) *CardT {
	return &CardT{
		bot:     bot,
		drafts:  newDraftCache(drafts, log),
		service: service,
		log:     log,
	}
}

func (t *CardT) handleAddWord(message *tgbotapi.Message) {
	if t.service.CategoryRequired() && len(t.service.Categories()) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➕ New category", callbackAddCat),
			),
		)
		respond(t.bot, t.log, message.Chat.ID, 0, "Every word needs a category. Create one first.", &keyboard)
		return
	}

	t.drafts.SetDraft(message.From.ID, models.Draft{Action: models.DraftAddWord})

	msg := tgbotapi.NewMessage(message.Chat.ID, "✏️ Send the word you want to learn.")
	sendMessage(t.bot, t.log, msg)
}

func (t *CardT) handleEditWord(chatID, userID, cardID int64) {
	card, ok := t.service.Card(cardID)
	if !ok {
		respond(t.bot, t.log, chatID, 0, errorText(&models.NotFoundError{Entity: "card", ID: cardID}), nil)
		return
	}

	t.drafts.SetDraft(userID, models.Draft{
		Action:     models.DraftEditWord,
		CardID:     card.ID,
		CategoryID: card.CategoryID,
	})

	text := fmt.Sprintf("✏️ Send the new word for <b>%s</b>, or %s to keep it.", html.EscapeString(card.Source), keepValue)
	respond(t.bot, t.log, chatID, 0, text, nil)
}

func (t *CardT) handleDraftInput(message *tgbotapi.Message, draft models.Draft) {
	chatID := message.Chat.ID
	userID := message.From.ID

	text := strings.TrimSpace(message.Text)
	if text == "" {
		respond(t.bot, t.log, chatID, 0, "Please send some text, or /cancel.", nil)
		return
	}

	var card models.Card
	if draft.Action == models.DraftEditWord {
		var ok bool
		if card, ok = t.service.Card(draft.CardID); !ok {
			t.drafts.DeleteDraft(userID)
			respond(t.bot, t.log, chatID, 0, errorText(&models.NotFoundError{Entity: "card", ID: draft.CardID}), nil)
			return
		}
	}

	switch {
	case draft.Source == "":
		if text == keepValue && draft.Action == models.DraftEditWord {
			text = card.Source
		}
		draft.Source = text
		t.drafts.SetDraft(userID, draft)

		prompt := "🌍 Now send the translation."
		if draft.Action == models.DraftEditWord {
			prompt = fmt.Sprintf("🌍 Send the new translation for <b>%s</b>, or %s to keep it.", html.EscapeString(card.Target), keepValue)
		}
		respond(t.bot, t.log, chatID, 0, prompt, nil)
	case draft.Target == "":
		if text == keepValue && draft.Action == models.DraftEditWord {
			text = card.Target
		}
		draft.Target = text
		t.drafts.SetDraft(userID, draft)
		t.askCategory(chatID, userID, draft)
	default:
		t.askCategory(chatID, userID, draft)
	}
}

func (t *CardT) askCategory(chatID, userID int64, draft models.Draft) {
	categories := t.service.Categories()
	required := t.service.CategoryRequired()

	if len(categories) == 0 {
		if required {
			t.drafts.DeleteDraft(userID)
			respond(t.bot, t.log, chatID, 0, "Every word needs a category. Create one first.", nil)
			return
		}
		t.saveDraft(chatID, 0, userID, models.AllCategories)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+1)
	for _, category := range categories {
		label := category.Name
		if draft.Action == models.DraftEditWord && category.ID == draft.CategoryID {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d", prefixWordCat, category.ID)),
		))
	}
	if !required {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🚫 No category", fmt.Sprintf("%s%d", prefixWordCat, models.AllCategories)),
		))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	respond(t.bot, t.log, chatID, 0, "🗂 Choose a category.", &keyboard)
}

func (t *CardT) handleWordCategory(chatID int64, messageID int, userID, categoryID int64) {
	t.saveDraft(chatID, messageID, userID, categoryID)
}

func (t *CardT) saveDraft(chatID int64, messageID int, userID, categoryID int64) {
	draft, ok := t.drafts.GetDraft(userID)
	if !ok || draft.Source == "" || draft.Target == "" {
		respond(t.bot, t.log, chatID, messageID, "Nothing to save. Press ➕ Add word to start again.", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	in := models.CardInput{
		Source:     draft.Source,
		Target:     draft.Target,
		CategoryID: categoryID,
	}

	var (
		card models.Card
		err  error
	)
	if draft.Action == models.DraftEditWord {
		card, err = t.service.UpdateCard(ctx, draft.CardID, in)
	} else {
		card, err = t.service.AddCard(ctx, in)
	}
	if err != nil {
		if !errorKeepsDraft(err) {
			t.drafts.DeleteDraft(userID)
		}
		respond(t.bot, t.log, chatID, messageID, errorText(err), nil)
		return
	}

	t.drafts.DeleteDraft(userID)

	text := fmt.Sprintf("✅ Saved: <b>%s</b> → %s", html.EscapeString(card.Source), html.EscapeString(card.Target))
	if category, ok := t.service.Category(card.CategoryID); ok {
		text += fmt.Sprintf(" (%s)", html.EscapeString(category.Name))
	}
	respond(t.bot, t.log, chatID, messageID, text, nil)
}

func (t *CardT) handleDeleteWord(chatID int64, messageID int, userID, cardID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.DeleteCard(ctx, cardID); err != nil {
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.handleWordList(chatID, userID, 0, messageID)
}

// handleWordList shows one page of the user's filtered cards, editing
// messageID in place when it is set.
func (t *CardT) handleWordList(chatID, userID int64, page, messageID int) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	cards, err := t.service.Filtered(ctx, userID)
	if err != nil {
		t.log.Warn("failed to load words", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, messageID, errorText(err), nil)
		return
	}

	title := "📚 All words"
	if categoryID, err := t.service.SelectedCategory(ctx, userID); err == nil {
		if category, ok := t.service.Category(categoryID); ok {
			title = "📚 " + html.EscapeString(category.Name)
		}
	}

	if len(cards) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🗂 Categories", callbackCats),
			),
		)
		respond(t.bot, t.log, chatID, messageID, title+"\n\nNo words here yet. Press ➕ Add word.", &keyboard)
		return
	}

	pages := (len(cards) + wordsPageSize - 1) / wordsPageSize
	if page < 0 || page >= pages {
		page = 0
	}

	from := page * wordsPageSize
	to := min(from+wordsPageSize, len(cards))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%d/%d)\n\n", title, page+1, pages)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, to-from+2)
	for i, card := range cards[from:to] {
		fmt.Fprintf(&sb, "%d. <b>%s</b> → %s · %d pts\n", from+i+1, html.EscapeString(card.Source), html.EscapeString(card.Target), card.Progress)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+card.Source, fmt.Sprintf("%s%d", prefixEditWord, card.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("%s%d", prefixDeleteWord, card.ID)),
		))
	}

	if nav := pageRow(prefixWordsPage, page, pages); len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🗂 Categories", callbackCats),
		tgbotapi.NewInlineKeyboardButtonData("▶️ Play", callbackPlay),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	respond(t.bot, t.log, chatID, messageID, sb.String(), &keyboard)
}

func pageRow(prefix string, page, pages int) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("%s%d", prefix, page-1)))
	}
	if page < pages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("%s%d", prefix, page+1)))
	}
	return row
}

// errorKeepsDraft reports whether the user can fix the input by choosing
// again, as opposed to starting over.
func errorKeepsDraft(err error) bool {
	return errors.Is(err, models.ErrTransport)
}
