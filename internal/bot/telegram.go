package bot

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/DanRulev/easyflash.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	CardSI
	CategorySI
	DrillSI
	Load(ctx context.Context) error
	Cards() []models.Card
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api      *tgbotapi.BotAPI
	bot      BotSender
	service  ServiceI
	log      *zap.Logger
	card     *CardT
	category *CategoryT
	drill    *DrillT
}

func NewTelegramAPI(botToken, env string, service ServiceI, drafts DraftStoreI, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = env == "development"

	t := newTelegram(api, service, drafts, log)
	t.api = api

	return t, nil
}

func newTelegram(bot BotSender, service ServiceI, drafts DraftStoreI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:      bot,
		service:  service,
		log:      log,
		card:     NewCardTAPI(bot, drafts, service, log),
		category: NewCategoryTAPI(bot, drafts, service, log),
		drill:    NewDrillTAPI(bot, service, log),
	}
}

// Start polls for updates until ctx is done.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)
	t.log.Info("bot started", zap.String("username", t.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// SendReminder nudges a chat to practise.
func (t *TelegramAPI) SendReminder(_ context.Context, chatID int64, streak int) error {
	text := "⏰ Time to practise! Press ▶️ Play to review your words."
	if streak > 0 {
		text = fmt.Sprintf("⏰ Time to practise! Keep your %d-day streak going.", streak)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder to chat %d: %w", chatID, err)
	}
	return nil
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

// respond edits messageID in place, or sends a new message when it is zero.
func respond(bot BotSender, log *zap.Logger, chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if messageID == 0 {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if keyboard != nil {
			msg.ReplyMarkup = keyboard
		}
		sendMessage(bot, log, msg)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	editMsg.ParseMode = tgbotapi.ModeHTML
	editMsg.ReplyMarkup = keyboard
	sendMessage(bot, log, editMsg)
}

func errorText(err error) string {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return "⚠️ " + html.EscapeString(validationErr.Error())
	case errors.Is(err, models.ErrNotFound):
		return "⚠️ It is gone already. Open the list again."
	case errors.Is(err, models.ErrTransport):
		return "⚠️ The flashcard server is unavailable. Try again later."
	}
	return "⚠️ Something went wrong. Try again later."
}
