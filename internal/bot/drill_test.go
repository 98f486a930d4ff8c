package bot

import (
	"strings"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/easyflash.git/internal/bot/mock"
	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDrillTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*DrillT, *mock_bot.MockBot) {
	t.Helper()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewDrillTAPI(mockBot, mockService, zap.NewNop()), mockBot
}

var (
	holaCard   = models.Card{ID: 1, Source: "hola", Target: "hello", CategoryID: 1}
	hiddenView = service.View{
		Mode:     session.ModeNormal,
		Phase:    session.Active,
		Card:     holaCard,
		HasCard:  true,
		Position: 0,
		Total:    2,
	}
)

func revealedView() service.View {
	v := hiddenView
	v.Revealed = true
	return v
}

func inlineKeyboard(t *testing.T, markup interface{}) *tgbotapi.InlineKeyboardMarkup {
	t.Helper()
	kb, ok := markup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	return kb
}

func TestDrillT_handlePlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: shows the first card hidden",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(hiddenView, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Card 1/2")
				assert.Contains(t, msg.Text, "<b>hola</b>")
				assert.NotContains(t, msg.Text, "hello")
				assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)

				kb := inlineKeyboard(t, msg.ReplyMarkup)
				require.Equal(t, 2, len(kb.InlineKeyboard))
				assert.Equal(t, callbackReveal, *kb.InlineKeyboard[0][0].CallbackData)
				assert.Equal(t, callbackAbandon, *kb.InlineKeyboard[1][0].CallbackData)
			},
		},
		{
			name: "active drill: resumes the current card",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive)
				ms.EXPECT().Current(gomock.Any(), int64(456)).Return(revealedView(), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "hello")

				kb := inlineKeyboard(t, msg.ReplyMarkup)
				require.Equal(t, 3, len(kb.InlineKeyboard[0]))
				assert.Equal(t, "rate_weak", *kb.InlineKeyboard[0][0].CallbackData)
				assert.Equal(t, "rate_medium", *kb.InlineKeyboard[0][1].CallbackData)
				assert.Equal(t, "rate_strong", *kb.InlineKeyboard[0][2].CallbackData)
			},
		},
		{
			name: "empty working set",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(service.View{}, session.ErrEmptyWorkingSet)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "No words to play")
			},
		},
		{
			name: "error: server unavailable",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(service.View{}, &models.TransportError{Op: "list cards", StatusCode: 503})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "server is unavailable")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			drill, mb := newDrillTMock(t, ctrl, tt.f)
			drill.handlePlay(123, 456)

			tt.assertFunc(t, mb)
		})
	}
}

func TestDrillT_handleDifficult(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrEmptyWorkingSet)
	})
	drill.handleDifficult(123, 456)

	require.Equal(t, 1, len(mb.SentMessages))
	msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "🎉 No difficult words right now.", msg.Text)
}

func TestDrillT_handleDifficult_SwitchesMode(t *testing.T) {
	t.Parallel()

	difficultView := hiddenView
	difficultView.Mode = session.ModeDifficult
	difficultView.Total = 1

	tests := []struct {
		name     string
		f        func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		contains string
	}{
		{
			name: "normal drill running: replaced by a difficult one",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				gomock.InOrder(
					ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive),
					ms.EXPECT().Current(gomock.Any(), int64(456)).Return(hiddenView, nil),
					ms.EXPECT().Abandon(gomock.Any(), int64(456)).Return(nil),
					ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(difficultView, nil),
				)
			},
			contains: "🔥 🃏 Card 1/1",
		},
		{
			name: "difficult drill running: resumed",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive)
				ms.EXPECT().Current(gomock.Any(), int64(456)).Return(difficultView, nil)
			},
			contains: "🔥 🃏 Card 1/1",
		},
		{
			name: "normal drill running and no difficult words",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				gomock.InOrder(
					ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive),
					ms.EXPECT().Current(gomock.Any(), int64(456)).Return(hiddenView, nil),
					ms.EXPECT().Abandon(gomock.Any(), int64(456)).Return(nil),
					ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrEmptyWorkingSet),
				)
			},
			contains: "No difficult words right now",
		},
		{
			name: "abandon fails",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartDifficult(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive)
				ms.EXPECT().Current(gomock.Any(), int64(456)).Return(hiddenView, nil)
				ms.EXPECT().Abandon(gomock.Any(), int64(456)).Return(assert.AnError)
			},
			contains: "Something went wrong",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			drill, mb := newDrillTMock(t, ctrl, tt.f)
			drill.handleDifficult(123, 456)

			require.Equal(t, 1, len(mb.SentMessages))
			msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			assert.Contains(t, msg.Text, tt.contains)
		})
	}
}

func TestDrillT_handlePlay_WhileDifficult(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	difficultView := hiddenView
	difficultView.Mode = session.ModeDifficult

	drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		gomock.InOrder(
			ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(service.View{}, session.ErrSessionActive),
			ms.EXPECT().Current(gomock.Any(), int64(456)).Return(difficultView, nil),
			ms.EXPECT().Abandon(gomock.Any(), int64(456)).Return(nil),
			ms.EXPECT().StartDrill(gomock.Any(), int64(456)).Return(hiddenView, nil),
		)
	})
	drill.handlePlay(123, 456)

	require.Equal(t, 1, len(mb.SentMessages))
	msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg.Text, "🃏 Card 1/2"))
}

func TestDrillT_handleRate(t *testing.T) {
	t.Parallel()

	complete := service.View{
		Phase:    session.Complete,
		Total:    2,
		Tally:    session.Tally{Weak: 1, Strong: 1},
		Accuracy: 50,
	}

	tests := []struct {
		name       string
		value      string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:  "success: last card shows the summary",
			value: "strong",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Rate(gomock.Any(), int64(456), session.Strong).Return(complete, true, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, 789, msg.MessageID)
				assert.Contains(t, msg.Text, "Drill complete")
				assert.Contains(t, msg.Text, "Weak: 1")
				assert.Contains(t, msg.Text, "Strong: 1")
				assert.Contains(t, msg.Text, "Accuracy: 50%")

				require.NotNil(t, msg.ReplyMarkup)
				assert.Equal(t, callbackRetry, *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
				assert.Equal(t, callbackMenu, *msg.ReplyMarkup.InlineKeyboard[0][1].CallbackData)
			},
		},
		{
			name:  "rejected: card stays hidden",
			value: "weak",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Rate(gomock.Any(), int64(456), session.Weak).Return(hiddenView, false, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "<b>hola</b>")
				assert.Equal(t, callbackReveal, *msg.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
			},
		},
		{
			name:  "bad callback value is ignored",
			value: "perfect",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			drill, mb := newDrillTMock(t, ctrl, tt.f)
			drill.handleRate(123, 789, 456, tt.value)

			tt.assertFunc(t, mb)
		})
	}
}

func TestDrillT_handleReveal(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().Reveal(gomock.Any(), int64(456)).Return(revealedView(), nil)
	})
	drill.handleReveal(123, 789, 456)

	require.Equal(t, 1, len(mb.SentMessages))
	msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, "🃏 Card 1/2\n\n<b>hola</b>\n\nhello", msg.Text)
}

func TestDrillT_handleRetry(t *testing.T) {
	t.Parallel()

	t.Run("replays the drill", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Retry(gomock.Any(), int64(456)).Return(hiddenView, nil)
		})
		drill.handleRetry(123, 789, 456)

		require.Equal(t, 1, len(mb.SentMessages))
		msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Contains(t, msg.Text, "Card 1/2")
	})

	t.Run("not complete shows the current state", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Retry(gomock.Any(), int64(456)).Return(service.View{}, session.ErrNotComplete)
			ms.EXPECT().Current(gomock.Any(), int64(456)).Return(service.View{}, nil)
		})
		drill.handleRetry(123, 789, 456)

		require.Equal(t, 1, len(mb.SentMessages))
		msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Contains(t, msg.Text, "No drill is running")
	})
}

func TestDrillT_handleAbandon(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	drill, mb := newDrillTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().Abandon(gomock.Any(), int64(456)).Return(nil)
	})
	drill.handleAbandon(123, 789, 456)

	require.Equal(t, 1, len(mb.SentMessages))
	msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, "⏹ Drill stopped.", msg.Text)
	assert.Nil(t, msg.ReplyMarkup)
}

func TestDrillT_handleProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		f           func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		contains    []string
		excludes    []string
		wantHistory bool
	}{
		{
			name: "success: with history",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Streak(gomock.Any()).Return(3, nil)
				ms.EXPECT().Accuracy(gomock.Any(), int64(456)).Return(75, nil)
				ms.EXPECT().LearnedCount().Return(4)
				ms.EXPECT().History(gomock.Any(), int64(456)).Return(models.SessionStats{
					TotalSessions: 2,
					TotalRated:    6,
					StrongCount:   4,
					BestAccuracy:  80,
				}, nil)
			},
			contains:    []string{"Learned words: 4", "Streak: 3 days", "Accuracy: 75%", "Drills finished: 2", "Strong answers: 4/6", "Best accuracy: 80%"},
			wantHistory: true,
		},
		{
			name: "streak and history unavailable",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Streak(gomock.Any()).Return(0, assert.AnError)
				ms.EXPECT().Accuracy(gomock.Any(), int64(456)).Return(0, nil)
				ms.EXPECT().LearnedCount().Return(0)
				ms.EXPECT().History(gomock.Any(), int64(456)).Return(models.SessionStats{}, assert.AnError)
			},
			contains: []string{"Learned words: 0", "Streak: 0 days", "Accuracy: 0%"},
			excludes: []string{"Drills finished"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			drill, mb := newDrillTMock(t, ctrl, tt.f)
			drill.handleProgress(123, 456)

			require.Equal(t, 1, len(mb.SentMessages))
			msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
			require.True(t, ok)
			for _, s := range tt.contains {
				assert.Contains(t, msg.Text, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, msg.Text, s)
			}

			if !tt.wantHistory {
				assert.Nil(t, msg.ReplyMarkup)
				return
			}
			kb := inlineKeyboard(t, msg.ReplyMarkup)
			assert.Equal(t, prefixHistory+"0", *kb.InlineKeyboard[0][0].CallbackData)
		})
	}
}

func TestDrillT_handleHistory(t *testing.T) {
	t.Parallel()

	finished := time.Date(2026, time.March, 5, 18, 30, 0, 0, time.UTC)
	page := []models.SessionResult{
		{Mode: string(session.ModeDifficult), CardCount: 3, Weak: 1, Strong: 2, Accuracy: 67, FinishedAt: finished},
		{Mode: string(session.ModeNormal), CardCount: 2, Medium: 1, Strong: 1, Accuracy: 50, FinishedAt: finished.Add(-time.Hour)},
	}

	tests := []struct {
		name     string
		page     int
		f        func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		contains []string
		wantNav  []string
	}{
		{
			name: "first of two pages",
			page: 0,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Results(gomock.Any(), int64(456), 0).Return(page, 12, nil)
			},
			contains: []string{"History</b> (1/2)", "🔥 05 Mar 18:30 · 3 cards · 😣 1 😐 0 😎 2 · 🎯 67%", "▶️ 05 Mar 17:30 · 2 cards"},
			wantNav:  []string{"hist_1"},
		},
		{
			name: "last page",
			page: 1,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Results(gomock.Any(), int64(456), models.ResultsPageSize).Return(page, 12, nil)
			},
			contains: []string{"History</b> (2/2)"},
			wantNav:  []string{"hist_0"},
		},
		{
			name: "no drills yet",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Results(gomock.Any(), int64(456), 0).Return([]models.SessionResult{}, 0, nil)
			},
			contains: []string{"No finished drills yet"},
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Results(gomock.Any(), int64(456), 0).Return(nil, 0, assert.AnError)
			},
			contains: []string{"Something went wrong"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			drill, mb := newDrillTMock(t, ctrl, tt.f)
			drill.handleHistory(123, 789, 456, tt.page)

			require.Equal(t, 1, len(mb.SentMessages))
			msg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
			require.True(t, ok)
			for _, s := range tt.contains {
				assert.Contains(t, msg.Text, s)
			}

			if tt.wantNav == nil {
				return
			}
			require.NotNil(t, msg.ReplyMarkup)
			nav := msg.ReplyMarkup.InlineKeyboard[0]
			require.Equal(t, len(tt.wantNav), len(nav))
			for i, data := range tt.wantNav {
				assert.Equal(t, data, *nav[i].CallbackData)
			}
			menu := msg.ReplyMarkup.InlineKeyboard[len(msg.ReplyMarkup.InlineKeyboard)-1]
			assert.Equal(t, callbackMenu, *menu[0].CallbackData)
		})
	}
}
