package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonAddWord    = "➕ Add word"
	ButtonMyWords    = "📚 My words"
	ButtonPlay       = "▶️ Play"
	ButtonDifficult  = "🔥 Difficult words"
	ButtonCategories = "🗂 Categories"
	ButtonProgress   = "📊 Progress"
	ButtonHelp       = "ℹ️ Help"
)

const (
	callbackMenu     = "main_menu"
	callbackPlay     = "play"
	callbackReveal   = "reveal"
	callbackRetry    = "retry"
	callbackAbandon  = "abandon"
	callbackAddCat   = "cadd"
	callbackCats     = "cats"
	prefixRate       = "rate_"
	prefixWordsPage  = "w_"
	prefixEditWord   = "edit_"
	prefixDeleteWord = "del_"
	prefixWordCat    = "wcat_"
	prefixSelectCat  = "sel_"
	prefixRenameCat  = "cren_"
	prefixDeleteCat  = "cdel_"
	prefixHistory    = "hist_"
)

const handlerTimeout = 10 * time.Second

const helpText = "🃏 <b>EasyFlash</b>\n\n" +
	"➕ <b>Add word</b>: save a word and its translation\n" +
	"📚 <b>My words</b>: browse, edit and delete words of the selected category\n" +
	"▶️ <b>Play</b>: drill the selected category card by card\n" +
	"🔥 <b>Difficult words</b>: drill the words you keep missing\n" +
	"🗂 <b>Categories</b>: pick a category filter or manage categories\n" +
	"📊 <b>Progress</b>: learned words, streak and accuracy\n\n" +
	"Send /cancel to stop typing a word or a category."

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "cancel":
		t.card.drafts.DeleteDraft(message.From.ID)
		t.showMainMenu(message.Chat.ID, "Cancelled.")
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Send /help to see what I can do.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.RegisterChat(ctx, message.Chat.ID); err != nil {
		t.log.Warn("failed to register chat", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}

	text := "👋 Welcome to EasyFlash! Add some words and start practising."
	if streak, err := t.service.RegisterStreak(ctx); err == nil && streak > 0 {
		text += "\n🔥 Streak: " + strconv.Itoa(streak) + " days"
	}

	if err := t.service.Load(ctx); err != nil {
		t.log.Warn("failed to reload deck", zap.Error(err))
		text += "\n\n" + errorText(err)
	}

	t.showMainMenu(message.Chat.ID, text)
}

// ensureDeck reloads the deck when it is empty, so words added elsewhere or a
// failed startup load are picked up. It reports whether the caller may go on.
func (t *TelegramAPI) ensureDeck(chatID int64) bool {
	if len(t.service.Cards()) > 0 {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.Load(ctx); err != nil {
		t.log.Warn("failed to reload deck", zap.Int64("chat_id", chatID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return false
	}
	return true
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	msg.ParseMode = tgbotapi.ModeHTML
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(t.bot, t.log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAddWord),
			tgbotapi.NewKeyboardButton(ButtonMyWords),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonPlay),
			tgbotapi.NewKeyboardButton(ButtonDifficult),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCategories),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID

	switch message.Text {
	case ButtonAddWord:
		t.card.drafts.DeleteDraft(userID)
		t.card.handleAddWord(message)
	case ButtonMyWords:
		t.card.drafts.DeleteDraft(userID)
		if t.ensureDeck(message.Chat.ID) {
			t.card.handleWordList(message.Chat.ID, userID, 0, 0)
		}
	case ButtonPlay:
		t.card.drafts.DeleteDraft(userID)
		if t.ensureDeck(message.Chat.ID) {
			t.drill.handlePlay(message.Chat.ID, userID)
		}
	case ButtonDifficult:
		t.card.drafts.DeleteDraft(userID)
		if t.ensureDeck(message.Chat.ID) {
			t.drill.handleDifficult(message.Chat.ID, userID)
		}
	case ButtonCategories:
		t.card.drafts.DeleteDraft(userID)
		t.category.handleCategories(message.Chat.ID, userID, 0)
	case ButtonProgress:
		t.drill.handleProgress(message.Chat.ID, userID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		draft, ok := t.card.drafts.GetDraft(userID)
		if !ok {
			t.showMainMenu(message.Chat.ID, "Choose an action from the menu.")
			return
		}
		if t.category.handlesDraft(draft) {
			t.category.handleDraftInput(message, draft)
			return
		}
		t.card.handleDraftInput(message, draft)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	userID := query.From.ID
	data := query.Data

	switch {
	case data == callbackMenu:
		t.showMainMenu(chatID, "Main menu")
	case data == callbackPlay:
		if t.ensureDeck(chatID) {
			t.drill.handlePlay(chatID, userID)
		}
	case data == callbackReveal:
		t.drill.handleReveal(chatID, messageID, userID)
	case data == callbackRetry:
		t.drill.handleRetry(chatID, messageID, userID)
	case data == callbackAbandon:
		t.drill.handleAbandon(chatID, messageID, userID)
	case data == callbackCats:
		t.category.handleCategories(chatID, userID, messageID)
	case data == callbackAddCat:
		t.category.handleAddCategory(chatID, userID)
	case strings.HasPrefix(data, prefixRate):
		t.drill.handleRate(chatID, messageID, userID, strings.TrimPrefix(data, prefixRate))
	case strings.HasPrefix(data, prefixWordsPage):
		if page, ok := parseID(data, prefixWordsPage); ok {
			t.card.handleWordList(chatID, userID, int(page), messageID)
		}
	case strings.HasPrefix(data, prefixEditWord):
		if id, ok := parseID(data, prefixEditWord); ok {
			t.card.handleEditWord(chatID, userID, id)
		}
	case strings.HasPrefix(data, prefixDeleteWord):
		if id, ok := parseID(data, prefixDeleteWord); ok {
			t.card.handleDeleteWord(chatID, messageID, userID, id)
		}
	case strings.HasPrefix(data, prefixWordCat):
		if id, ok := parseID(data, prefixWordCat); ok {
			t.card.handleWordCategory(chatID, messageID, userID, id)
		}
	case strings.HasPrefix(data, prefixSelectCat):
		if id, ok := parseID(data, prefixSelectCat); ok {
			t.category.handleSelectCategory(chatID, messageID, userID, id)
		}
	case strings.HasPrefix(data, prefixRenameCat):
		if id, ok := parseID(data, prefixRenameCat); ok {
			t.category.handleRenameCategory(chatID, userID, id)
		}
	case strings.HasPrefix(data, prefixHistory):
		if page, ok := parseID(data, prefixHistory); ok {
			t.drill.handleHistory(chatID, messageID, userID, int(page))
		}
	case strings.HasPrefix(data, prefixDeleteCat):
		if id, ok := parseID(data, prefixDeleteCat); ok {
			t.category.handleDeleteCategory(chatID, messageID, userID, id)
		}
	default:
		t.log.Debug("unknown callback", zap.String("data", data))
	}
}

func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
