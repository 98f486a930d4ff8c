package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type DrillSI interface {
	StartDrill(ctx context.Context, userID int64) (service.View, error)
	StartDifficult(ctx context.Context, userID int64) (service.View, error)
	Reveal(ctx context.Context, userID int64) (service.View, error)
	Rate(ctx context.Context, userID int64, rating session.Rating) (service.View, bool, error)
	Retry(ctx context.Context, userID int64) (service.View, error)
	Abandon(ctx context.Context, userID int64) error
	Current(ctx context.Context, userID int64) (service.View, error)
	Accuracy(ctx context.Context, userID int64) (int, error)
	LearnedCount() int
	Streak(ctx context.Context) (int, error)
	RegisterStreak(ctx context.Context) (int, error)
	History(ctx context.Context, userID int64) (models.SessionStats, error)
	Results(ctx context.Context, userID int64, offset int) ([]models.SessionResult, int, error)
	RegisterChat(ctx context.Context, chatID int64) error
}

type DrillT struct {
	bot     BotSender
	service DrillSI
	log     *zap.Logger
}

func NewDrillTAPI(bot BotSender, service DrillSI, log *zap.Logger) *DrillT {
	return &DrillT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *DrillT) handlePlay(chatID, userID int64) {
	t.start(chatID, userID, session.ModeNormal, t.service.StartDrill, "No words to play in this category. Add some words or pick another category.")
}

func (t *DrillT) handleDifficult(chatID, userID int64) {
	t.start(chatID, userID, session.ModeDifficult, t.service.StartDifficult, "🎉 No difficult words right now.")
}

type startFunc func(ctx context.Context, userID int64) (service.View, error)

func (t *DrillT) start(chatID, userID int64, mode session.Mode, startFn startFunc, emptyText string) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	view, err := startFn(ctx, userID)
	if errors.Is(err, session.ErrSessionActive) {
		view, err = t.resume(ctx, userID, mode, startFn)
	}

	switch {
	case errors.Is(err, session.ErrEmptyWorkingSet):
		respond(t.bot, t.log, chatID, 0, emptyText, nil)
		return
	case err != nil:
		t.log.Warn("failed to start drill", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.showView(chatID, 0, view)
}

// resume keeps a running drill of the requested mode. A drill of the other
// mode is dropped and the requested one starts over.
func (t *DrillT) resume(ctx context.Context, userID int64, mode session.Mode, startFn startFunc) (service.View, error) {
	view, err := t.service.Current(ctx, userID)
	if err != nil {
		return service.View{}, err
	}
	if view.Mode == mode {
		return view, nil
	}

	t.log.Debug("switching drill mode", zap.Int64("user_id", userID), zap.String("from", string(view.Mode)), zap.String("to", string(mode)))

	if err := t.service.Abandon(ctx, userID); err != nil {
		return service.View{}, err
	}
	return startFn(ctx, userID)
}

func (t *DrillT) handleReveal(chatID int64, messageID int, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	view, err := t.service.Reveal(ctx, userID)
	if err != nil {
		t.log.Warn("failed to reveal card", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.showView(chatID, messageID, view)
}

func (t *DrillT) handleRate(chatID int64, messageID int, userID int64, value string) {
	rating, err := session.ParseRating(value)
	if err != nil {
		t.log.Debug("bad rating callback", zap.String("value", value))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	view, _, err := t.service.Rate(ctx, userID, rating)
	if err != nil {
		t.log.Warn("failed to rate card", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	// a rejected rating leaves the view as it was
	t.showView(chatID, messageID, view)
}

func (t *DrillT) handleRetry(chatID int64, messageID int, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	view, err := t.service.Retry(ctx, userID)
	if errors.Is(err, session.ErrNotComplete) {
		view, err = t.service.Current(ctx, userID)
	}
	if err != nil {
		t.log.Warn("failed to retry drill", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	t.showView(chatID, messageID, view)
}

func (t *DrillT) handleAbandon(chatID int64, messageID int, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if err := t.service.Abandon(ctx, userID); err != nil {
		t.log.Warn("failed to abandon drill", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, 0, errorText(err), nil)
		return
	}

	respond(t.bot, t.log, chatID, messageID, "⏹ Drill stopped.", nil)
}

func (t *DrillT) showView(chatID int64, messageID int, view service.View) {
	switch view.Phase {
	case session.Active:
		text, keyboard := cardMessage(view)
		respond(t.bot, t.log, chatID, messageID, text, keyboard)
	case session.Complete:
		text, keyboard := summaryMessage(view)
		respond(t.bot, t.log, chatID, messageID, text, keyboard)
	default:
		respond(t.bot, t.log, chatID, messageID, "No drill is running. Press ▶️ Play to start one.", nil)
	}
}

func cardMessage(view service.View) (string, *tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder

	if view.Mode == session.ModeDifficult {
		sb.WriteString("🔥 ")
	}
	fmt.Fprintf(&sb, "🃏 Card %d/%d\n\n<b>%s</b>", view.Position+1, view.Total, html.EscapeString(view.Card.Source))

	stop := tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", callbackAbandon)

	if !view.Revealed {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("👀 Show translation", callbackReveal),
			),
			tgbotapi.NewInlineKeyboardRow(stop),
		)
		return sb.String(), &keyboard
	}

	fmt.Fprintf(&sb, "\n\n%s", html.EscapeString(view.Card.Target))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("😣 Weak", prefixRate+session.Weak.String()),
			tgbotapi.NewInlineKeyboardButtonData("😐 Medium", prefixRate+session.Medium.String()),
			tgbotapi.NewInlineKeyboardButtonData("😎 Strong", prefixRate+session.Strong.String()),
		),
		tgbotapi.NewInlineKeyboardRow(stop),
	)
	return sb.String(), &keyboard
}

func summaryMessage(view service.View) (string, *tgbotapi.InlineKeyboardMarkup) {
	text := fmt.Sprintf("🏁 <b>Drill complete!</b>\n\n😣 Weak: %d\n😐 Medium: %d\n😎 Strong: %d\n\n🎯 Accuracy: %d%%",
		view.Tally.Weak, view.Tally.Medium, view.Tally.Strong, view.Accuracy)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", callbackRetry),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", callbackMenu),
		),
	)
	return text, &keyboard
}

func (t *DrillT) handleProgress(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	streak, err := t.service.Streak(ctx)
	if err != nil {
		streak = 0
	}

	accuracy, err := t.service.Accuracy(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get accuracy", zap.Int64("user_id", userID), zap.Error(err))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 <b>Progress</b>\n\n✅ Learned words: %d\n🔥 Streak: %d days\n🎯 Accuracy: %d%%",
		t.service.LearnedCount(), streak, accuracy)

	var keyboard *tgbotapi.InlineKeyboardMarkup
	if stats, err := t.service.History(ctx, userID); err == nil && stats.TotalSessions > 0 {
		fmt.Fprintf(&sb, "\n\n🎮 Drills finished: %d\n😎 Strong answers: %d/%d\n🏆 Best accuracy: %d%%",
			stats.TotalSessions, stats.StrongCount, stats.TotalRated, stats.BestAccuracy)

		markup := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🗒 History", prefixHistory+"0"),
			),
		)
		keyboard = &markup
	}

	respond(t.bot, t.log, chatID, 0, sb.String(), keyboard)
}

// handleHistory shows one page of the user's finished drills, newest first.
func (t *DrillT) handleHistory(chatID int64, messageID int, userID int64, page int) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	if page < 0 {
		page = 0
	}

	results, total, err := t.service.Results(ctx, userID, page*models.ResultsPageSize)
	if err != nil {
		t.log.Warn("failed to get session results", zap.Int64("user_id", userID), zap.Error(err))
		respond(t.bot, t.log, chatID, messageID, errorText(err), nil)
		return
	}
	if len(results) == 0 {
		respond(t.bot, t.log, chatID, messageID, "🗒 No finished drills yet.", nil)
		return
	}

	pages := (total + models.ResultsPageSize - 1) / models.ResultsPageSize

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗒 <b>History</b> (%d/%d)\n\n", page+1, pages)
	for _, r := range results {
		mode := "▶️"
		if r.Mode == string(session.ModeDifficult) {
			mode = "🔥"
		}
		fmt.Fprintf(&sb, "%s %s · %d cards · 😣 %d 😐 %d 😎 %d · 🎯 %d%%\n",
			mode, r.FinishedAt.Format("02 Jan 15:04"), r.CardCount, r.Weak, r.Medium, r.Strong, r.Accuracy)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	if nav := pageRow(prefixHistory, page, pages); len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", callbackMenu),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	respond(t.bot, t.log, chatID, messageID, sb.String(), &keyboard)
}
