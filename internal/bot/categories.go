package bot

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CategorySI interface {
	Categories() []models.Category
	Category(id int64) (models.Category, bool)
	SelectedCategory(ctx context.Context, userID int64) (int64, error)
	SelectCategory(ctx context.Context, userID, categoryID int64) error
	AddCategory(ctx context.Context, name string) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (models.Category, error)
	DeleteCategory(ctx context.Context, userID, id int64) error
}

type CategoryT struct {
	bot     BotSender
	drafts  *draftCache
	service CategorySI
	log     *zap.Logger
}

func NewCategoryTAPI(bot BotSender, drafts DraftStoreI, service CategorySI, log *zap.Logger) *CategoryT {
	return &CategoryT{
		bot:     bot,
		drafts:  newDraftCache(drafts, log),
		service: service,
		log:     log,
	}
}

func (t *CategoryT) handlesDraft(draft models.Draft) bool {
	return draft.Action == models.DraftAddCategory || draft.Action == models.DraftRenameCategory
}

// handleCategories lists the categories with the user's filter marked.
func (t *CategoryT) handleCategories(chatID, userID int64, messageID int) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	selected, err := t.service.SelectedCategory(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get selected category", zap.Int64("user_id", userID), zap.Error(err))
		selected = models.AllCategories
	}

	categories := t.service.Categories()

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)+2)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(markSelected("All words", selected == models.AllCategories), fmt.Sprintf("%s%d", prefixSelectCat, models.AllCategories)),
	))
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(markSelected(category.Name, category.ID == selected), fmt.Sprintf("%s%d", prefixSelectCat, category.ID)),
			tgbotapi.NewInlineKeyboardButtonData("✏️", fmt.Sprintf("%s%d", prefixRenameCat, category.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("%s%d", prefixDeleteCat, category.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ New category", callbackAddCat),
	))

	text := "🗂 <b>Categories</b>\n\nPick the category to study."
	if len(categories) == 0 {
		text = "🗂 <b>Categories</b>\n\nNo categories yet."
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	respond(t.bot, t.log, chatID, messageID, text, &keyboard)
}

func markSelected(label string, selected bool) string {
	if selected {
		return "✅ " + label
	}
	return label
}

func (t *CategoryT) handleSelectCategory(chatID int64, messageID int, userID, categoryID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.SelectCategory(ctx, userID, categoryID); err != nil {
		t.log.Warn("failed to select category", zap.Int64("user_id", userID), zap.Int64("category_id", categoryID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.handleCategories(chatID, userID, messageID)
}

func (t *CategoryT) handleAddCategory(chatID, userID int64) {
	t.drafts.SetDraft(userID, models.Draft{Action: models.DraftAddCategory})
	respond(t.bot, t.log, chatID, 0, "✏️ Send the name of the new category.", nil)
}

func (t *CategoryT) handleRenameCategory(chatID, userID, categoryID int64) {
	category, ok := t.service.Category(categoryID)
	if !ok {
		respond(t.bot, t.log, chatID, 0, errorText(&models.NotFoundError{Entity: "category", ID: categoryID}), nil)
		return
	}

	t.drafts.SetDraft(userID, models.Draft{Action: models.DraftRenameCategory, CategoryID: categoryID})

	text := fmt.Sprintf("✏️ Send the new name for <b>%s</b>.", html.EscapeString(category.Name))
	respond(t.bot, t.log, chatID, 0, text, nil)
}

func (t *CategoryT) handleDeleteCategory(chatID int64, messageID int, userID, categoryID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.DeleteCategory(ctx, userID, categoryID); err != nil {
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.handleCategories(chatID, userID, messageID)
}

func (t *CategoryT) handleDraftInput(message *tgbotapi.Message, draft models.Draft) {
	chatID := message.Chat.ID
	userID := message.From.ID

	name := strings.TrimSpace(message.Text)
	if name == "" {
		respond(t.bot, t.log, chatID, 0, "Please send a name, or /cancel.", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	var err error
	if draft.Action == models.DraftRenameCategory {
		_, err = t.service.UpdateCategory(ctx, draft.CategoryID, name)
	} else {
		_, err = t.service.AddCategory(ctx, name)
	}
	if err != nil {
		if !errorKeepsDraft(err) {
			t.drafts.DeleteDraft(userID)
		}
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.drafts.DeleteDraft(userID)
	t.handleCategories(chatID, userID, 0)
}
