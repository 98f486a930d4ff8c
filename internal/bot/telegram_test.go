package bot

import (
	"context"
	"fmt"
	"testing"

	mock_bot "github.com/DanRulev/easyflash.git/internal/bot/mock"
	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	"github.com/DanRulev/easyflash.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*TelegramAPI, *mock_bot.MockBot) {
	t.Helper()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return newTelegram(mockBot, mockService, cache.NewCache(), zap.NewNop()), mockBot
}

func commandMessage(command string) *tgbotapi.Message {
	msg := textMessage(123, 456, "/"+command)
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command) + 1}}
	return msg
}

func TestTelegramAPI_handleUpdate_Commands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		command    string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:    "start registers chat and streak",
			command: "start",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RegisterChat(gomock.Any(), int64(123)).Return(nil)
				ms.EXPECT().RegisterStreak(gomock.Any()).Return(5, nil)
				ms.EXPECT().Load(gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Welcome to EasyFlash")
				assert.Contains(t, msg.Text, "Streak: 5 days")

				kb, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				assert.True(t, kb.ResizeKeyboard)
				assert.Equal(t, ButtonAddWord, kb.Keyboard[0][0].Text)
				assert.Equal(t, ButtonPlay, kb.Keyboard[1][0].Text)
			},
		},
		{
			name:    "start survives a streak failure",
			command: "start",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RegisterChat(gomock.Any(), int64(123)).Return(assert.AnError)
				ms.EXPECT().RegisterStreak(gomock.Any()).Return(0, assert.AnError)
				ms.EXPECT().Load(gomock.Any()).Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.NotContains(t, msg.Text, "Streak")
			},
		},
		{
			name:    "start reloads the deck and reports a failure",
			command: "start",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RegisterChat(gomock.Any(), int64(123)).Return(nil)
				ms.EXPECT().RegisterStreak(gomock.Any()).Return(0, nil)
				ms.EXPECT().Load(gomock.Any()).Return(fmt.Errorf("failed to load words: %w", &models.TransportError{Op: "list words", StatusCode: 502}))
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Welcome to EasyFlash")
				assert.Contains(t, msg.Text, "server is unavailable")

				_, ok = msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				assert.True(t, ok, "the menu is still shown")
			},
		},
		{
			name:    "help",
			command: "help",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, helpText, msg.Text)
				assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
			},
		},
		{
			name:    "unknown command",
			command: "foo",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Unknown command")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			tg, mb := newTelegramMock(t, ctrl, tt.f)
			tg.handleUpdate(tgbotapi.Update{Message: commandMessage(tt.command)})

			tt.assertFunc(t, mb)
		})
	}
}

func TestTelegramAPI_handleCancel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	tg, mb := newTelegramMock(t, ctrl, nil)
	tg.card.drafts.SetDraft(456, models.Draft{Action: models.DraftAddWord})

	tg.handleUpdate(tgbotapi.Update{Message: commandMessage("cancel")})

	_, ok := tg.card.drafts.GetDraft(456)
	assert.False(t, ok)
	require.Equal(t, 1, len(mb.SentMessages))
}

func TestTelegramAPI_handleMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		draft      *models.Draft
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *TelegramAPI, *mock_bot.MockBot)
	}{
		{
			name: "play button starts a drill and drops the draft",
			text: ButtonPlay,
			draft: &models.Draft{
				Action: models.DraftAddWord,
				Source: "hola",
			},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Cards().Return([]models.Card{holaCard})
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(hiddenView, nil)
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				_, ok := tg.card.drafts.GetDraft(456)
				assert.False(t, ok)
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name: "difficult button",
			text: ButtonDifficult,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Cards().Return([]models.Card{holaCard})
				ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(hiddenView, nil)
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name: "empty deck is reloaded before playing",
			text: ButtonPlay,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				gomock.InOrder(
					ms.EXPECT().Cards().Return(nil),
					ms.EXPECT().Load(gomock.Any()).Return(nil),
					ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(hiddenView, nil),
				)
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "<b>hola</b>")
			},
		},
		{
			name: "failed reload reports the error and keeps the cache",
			text: ButtonMyWords,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Cards().Return(nil)
				ms.EXPECT().Load(gomock.Any()).Return(&models.TransportError{Op: "list words", StatusCode: 503})
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "server is unavailable")
			},
		},
		{
			name: "difficult button reloads an empty deck",
			text: ButtonDifficult,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				gomock.InOrder(
					ms.EXPECT().Cards().Return(nil),
					ms.EXPECT().Load(gomock.Any()).Return(nil),
					ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrEmptyWorkingSet),
				)
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name: "free text without draft shows the menu",
			text: "hello there",
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "Choose an action from the menu.", msg.Text)
			},
		},
		{
			name:  "free text with category draft goes to categories",
			text:  "Verbs",
			draft: &models.Draft{Action: models.DraftAddCategory},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AddCategory(gomock.Any(), "Verbs").Return(models.Category{ID: 3, Name: "Verbs"}, nil)
				ms.EXPECT().SelectedCategory(gomock.Any(), int64(456)).Return(int64(0), nil)
				ms.EXPECT().Categories().Return(nil)
			},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name:  "free text with word draft goes to cards",
			text:  "hola",
			draft: &models.Draft{Action: models.DraftAddWord},
			assertFunc: func(t *testing.T, tg *TelegramAPI, mb *mock_bot.MockBot) {
				draft, ok := tg.card.drafts.GetDraft(456)
				require.True(t, ok)
				assert.Equal(t, "hola", draft.Source)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			tg, mb := newTelegramMock(t, ctrl, tt.f)
			if tt.draft != nil {
				tg.card.drafts.SetDraft(456, *tt.draft)
			}

			tg.handleUpdate(tgbotapi.Update{Message: textMessage(123, 456, tt.text)})

			tt.assertFunc(t, tg, mb)
		})
	}
}

func TestTelegramAPI_handleCallbackQuery(t *testing.T) {
	t.Parallel()

	query := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			ID:      "q1",
			From:    &tgbotapi.User{ID: 456},
			Message: &tgbotapi.Message{MessageID: 789, Chat: &tgbotapi.Chat{ID: 123}},
			Data:    data,
		}
	}

	tests := []struct {
		name     string
		query    *tgbotapi.CallbackQuery
		f        func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantSent int
	}{
		{
			name:  "rate",
			query: query("rate_strong"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Rate(gomock.Any(), int64(456), session.Strong).Return(service.View{Phase: session.Complete}, true, nil)
			},
			wantSent: 1,
		},
		{
			name:  "reveal",
			query: query(callbackReveal),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Reveal(gomock.Any(), int64(456)).Return(revealedView(), nil)
			},
			wantSent: 1,
		},
		{
			name:  "select category",
			query: query("sel_1"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SelectCategory(gomock.Any(), int64(456), int64(1)).Return(nil)
				ms.EXPECT().SelectedCategory(gomock.Any(), int64(456)).Return(int64(1), nil)
				ms.EXPECT().Categories().Return(testCategories)
			},
			wantSent: 1,
		},
		{
			name:  "delete word",
			query: query("del_1"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().DeleteCard(gomock.Any(), int64(1)).Return(nil)
				ms.EXPECT().Filtered(gomock.Any(), int64(456)).Return(nil, nil)
				ms.EXPECT().SelectedCategory(gomock.Any(), int64(456)).Return(int64(0), nil)
				ms.EXPECT().Category(int64(0)).Return(models.Category{}, false)
			},
			wantSent: 1,
		},
		{
			name:  "play reloads an empty deck",
			query: query(callbackPlay),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Cards().Return(nil)
				ms.EXPECT().Load(gomock.Any()).Return(nil)
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(hiddenView, nil)
			},
			wantSent: 1,
		},
		{
			name:  "history page",
			query: query("hist_1"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Results(gomock.Any(), int64(456), models.ResultsPageSize).Return([]models.SessionResult{{Mode: "normal", CardCount: 2}}, 11, nil)
			},
			wantSent: 1,
		},
		{
			name:     "malformed id is ignored",
			query:    query("edit_x"),
			wantSent: 0,
		},
		{
			name: "callback without message is only answered",
			query: &tgbotapi.CallbackQuery{
				ID:   "q2",
				From: &tgbotapi.User{ID: 456},
				Data: callbackReveal,
			},
			wantSent: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			tg, mb := newTelegramMock(t, ctrl, tt.f)
			tg.handleUpdate(tgbotapi.Update{CallbackQuery: tt.query})

			require.Equal(t, 1, len(mb.Requests))
			_, ok := mb.Requests[0].(tgbotapi.CallbackConfig)
			assert.True(t, ok)
			assert.Equal(t, tt.wantSent, len(mb.SentMessages))
		})
	}
}

func TestTelegramAPI_SendReminder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		streak   int
		sendErr  error
		wantText string
		wantErr  bool
	}{
		{
			name:     "no streak",
			wantText: "⏰ Time to practise! Press ▶️ Play to review your words.",
		},
		{
			name:     "with streak",
			streak:   4,
			wantText: "⏰ Time to practise! Keep your 4-day streak going.",
		},
		{
			name:    "send fails",
			sendErr: assert.AnError,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			tg, mb := newTelegramMock(t, ctrl, nil)
			mb.Err = tt.sendErr

			err := tg.SendReminder(context.Background(), 123, tt.streak)
			if tt.wantErr {
				require.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)

			require.Equal(t, 1, len(mb.SentMessages))
			msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Equal(t, int64(123), msg.ChatID)
			assert.Equal(t, tt.wantText, msg.Text)
		})
	}
}

func TestErrorText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &models.ValidationError{Field: "source", Reason: "is required"}, "⚠️ validation failed: source is required"},
		{"validation escapes html", &models.ValidationError{Reason: "<b>"}, "⚠️ validation failed: &lt;b&gt;"},
		{"not found", &models.NotFoundError{Entity: "card", ID: 1}, "⚠️ It is gone already. Open the list again."},
		{"transport", &models.TransportError{Op: "list cards", StatusCode: 500}, "⚠️ The flashcard server is unavailable. Try again later."},
		{"other", assert.AnError, "⚠️ Something went wrong. Try again later."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errorText(tt.err))
		})
	}
}
