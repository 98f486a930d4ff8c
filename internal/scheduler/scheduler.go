package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type Notifier interface {
	SendReminder(ctx context.Context, chatID int64, streak int) error
}

type SourceI interface {
	Chats(ctx context.Context) ([]int64, error)
	Streak(ctx context.Context) (int, error)
}

// Scheduler sends every registered chat a daily practice reminder.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    SourceI
	notifier  Notifier
	at        string
	timeout   time.Duration
	log       *zap.Logger
}

func New(source SourceI, notifier Notifier, at string, timeout time.Duration, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		source:    source,
		notifier:  notifier,
		at:        at,
		timeout:   timeout,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(1).Day().At(s.at).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.SendReminders(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders at %q: %w", s.at, err)
	}

	s.scheduler.StartAsync()
	s.log.Info("reminders scheduled", zap.String("at", s.at))

	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// SendReminders notifies every registered chat and returns how many
// reminders went out.
func (s *Scheduler) SendReminders(ctx context.Context) int {
	chats, err := s.source.Chats(ctx)
	if err != nil {
		s.log.Error("failed to list chats for reminders", zap.Error(err))
		return 0
	}
	if len(chats) == 0 {
		return 0
	}

	streak, err := s.source.Streak(ctx)
	if err != nil {
		s.log.Warn("sending reminders without streak", zap.Error(err))
		streak = 0
	}

	sent := 0
	for _, chatID := range chats {
		if err := s.notifier.SendReminder(ctx, chatID, streak); err != nil {
			s.log.Warn("failed to send reminder", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}
		sent++
	}

	return sent
}
