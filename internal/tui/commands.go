package tui

import (
	"context"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

type statsMsg struct {
	learned  int
	streak   int
	accuracy int
}

type wordsMsg struct {
	cards      []models.Card
	categoryID int64
	err        error
}

type drillMsg struct {
	view service.View
	err  error
}

type savedMsg struct {
	card models.Card
	err  error
}

// doneMsg reports a mutation and the command to run after it.
type doneMsg struct {
	err  error
	next tea.Cmd
}

func (m Model) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		// the home screen shows zeros when the server is unreachable
		streak, _ := m.ctrl.Streak(ctx)
		accuracy, _ := m.ctrl.Accuracy(ctx, m.userID)

		return statsMsg{
			learned:  m.ctrl.LearnedCount(),
			streak:   streak,
			accuracy: accuracy,
		}
	}
}

func (m Model) loadWords() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		categoryID, err := m.ctrl.SelectedCategory(ctx, m.userID)
		if err != nil {
			return wordsMsg{err: err}
		}
		cards, err := m.ctrl.Filtered(ctx, m.userID)
		return wordsMsg{cards: cards, categoryID: categoryID, err: err}
	}
}

func (m Model) selectCategory(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		return doneMsg{err: m.ctrl.SelectCategory(ctx, m.userID, id), next: m.loadWords()}
	}
}

func (m Model) deleteCard(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		return doneMsg{err: m.ctrl.DeleteCard(ctx, id), next: m.loadWords()}
	}
}

func (m Model) addCard(in models.CardInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		card, err := m.ctrl.AddCard(ctx, in)
		return savedMsg{card: card, err: err}
	}
}

func (m Model) drillCmd(fn func(ctx context.Context) (service.View, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.withTimeout()
		defer cancel()

		view, err := fn(ctx)
		return drillMsg{view: view, err: err}
	}
}

func (m Model) startDrill(difficult bool) tea.Cmd {
	start := m.ctrl.StartDrill
	if difficult {
		start = m.ctrl.StartDifficult
	}
	return m.drillCmd(func(ctx context.Context) (service.View, error) {
		return start(ctx, m.userID)
	})
}

func (m Model) reveal() tea.Cmd {
	return m.drillCmd(func(ctx context.Context) (service.View, error) {
		return m.ctrl.Reveal(ctx, m.userID)
	})
}

func (m Model) rate(r session.Rating) tea.Cmd {
	return m.drillCmd(func(ctx context.Context) (service.View, error) {
		view, _, err := m.ctrl.Rate(ctx, m.userID, r)
		return view, err
	})
}

func (m Model) retry() tea.Cmd {
	return m.drillCmd(func(ctx context.Context) (service.View, error) {
		return m.ctrl.Retry(ctx, m.userID)
	})
}

func (m Model) abandon() tea.Cmd {
	return m.drillCmd(func(ctx context.Context) (service.View, error) {
		return service.View{}, m.ctrl.Abandon(ctx, m.userID)
	})
}
