// Package tui is a terminal front-end for a single local user.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type ControllerI interface {
	Filtered(ctx context.Context, userID int64) ([]models.Card, error)
	Categories() []models.Category
	SelectedCategory(ctx context.Context, userID int64) (int64, error)
	SelectCategory(ctx context.Context, userID, categoryID int64) error
	CategoryRequired() bool
	AddCard(ctx context.Context, in models.CardInput) (models.Card, error)
	DeleteCard(ctx context.Context, id int64) error
	StartDrill(ctx context.Context, userID int64) (service.View, error)
	StartDifficult(ctx context.Context, userID int64) (service.View, error)
	Reveal(ctx context.Context, userID int64) (service.View, error)
	Rate(ctx context.Context, userID int64, rating session.Rating) (service.View, bool, error)
	Retry(ctx context.Context, userID int64) (service.View, error)
	Abandon(ctx context.Context, userID int64) error
	Accuracy(ctx context.Context, userID int64) (int, error)
	LearnedCount() int
	Streak(ctx context.Context) (int, error)
}

type screen int

const (
	screenHome screen = iota
	screenWords
	screenAdd
	screenDrill
)

const (
	fieldSource = iota
	fieldTarget
)

type Model struct {
	ctrl    ControllerI
	userID  int64
	timeout time.Duration

	screen screen
	status string
	err    error

	learned  int
	streak   int
	accuracy int

	cards      []models.Card
	categoryID int64
	cursor     int

	inputs      []textinput.Model
	focus       int
	newCategory int64

	drill service.View
}

func New(ctrl ControllerI, userID int64, timeout time.Duration) Model {
	source := textinput.New()
	source.Placeholder = "word"
	source.Prompt = "Word:        "
	source.CharLimit = 100

	target := textinput.New()
	target.Placeholder = "translation"
	target.Prompt = "Translation: "
	target.CharLimit = 100

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return Model{
		ctrl:    ctrl,
		userID:  userID,
		timeout: timeout,
		inputs:  []textinput.Model{source, target},
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadStats()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case statsMsg:
		m.learned, m.streak, m.accuracy = msg.learned, msg.streak, msg.accuracy
		return m, nil
	case wordsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cards, m.categoryID = msg.cards, msg.categoryID
		if m.cursor >= len(m.cards) {
			m.cursor = max(len(m.cards)-1, 0)
		}
		return m, nil
	case drillMsg:
		return m.handleDrill(msg)
	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Saved " + msg.card.Source
		m.resetForm()
		m.screen = screenWords
		return m, m.loadWords()
	case doneMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, msg.next
	}

	switch m.screen {
	case screenWords:
		return m.updateWords(msg)
	case screenAdd:
		return m.updateAdd(msg)
	case screenDrill:
		return m.updateDrill(msg)
	default:
		return m.updateHome(msg)
	}
}

func (m Model) handleDrill(msg drillMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, session.ErrEmptyWorkingSet):
		m.status = "No cards to drill here."
		return m, nil
	case msg.err != nil:
		m.err = msg.err
		return m, nil
	}

	m.drill = msg.view
	if msg.view.Phase == session.Idle {
		m.screen = screenHome
		return m, m.loadStats()
	}
	m.screen = screenDrill
	return m, nil
}

func (m Model) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status, m.err = "", nil

	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "p":
		return m, m.startDrill(false)
	case "d":
		return m, m.startDrill(true)
	case "w":
		m.screen = screenWords
		return m, m.loadWords()
	case "a":
		cmd := m.openForm()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateWords(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status, m.err = "", nil

	switch key.String() {
	case "esc", "q":
		m.screen = screenHome
		return m, m.loadStats()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cards)-1 {
			m.cursor++
		}
	case "c", "right":
		return m, m.selectCategory(m.nextCategory(m.categoryID, 1))
	case "left":
		return m, m.selectCategory(m.nextCategory(m.categoryID, -1))
	case "x":
		if len(m.cards) > 0 {
			return m, m.deleteCard(m.cards[m.cursor].ID)
		}
	case "a":
		cmd := m.openForm()
		return m, cmd
	case "p":
		return m, m.startDrill(false)
	}
	return m, nil
}

// nextCategory steps through "all" followed by every category.
func (m Model) nextCategory(current int64, step int) int64 {
	ids := []int64{models.AllCategories}
	for _, c := range m.ctrl.Categories() {
		ids = append(ids, c.ID)
	}

	idx := 0
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(ids)) % len(ids)
	return ids[idx]
}

func (m *Model) openForm() tea.Cmd {
	m.screen = screenAdd
	m.resetForm()
	m.newCategory = m.categoryID
	if m.newCategory == models.AllCategories && m.ctrl.CategoryRequired() {
		m.newCategory = m.nextCategory(models.AllCategories, 1)
	}
	return m.inputs[fieldSource].Focus()
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldSource
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.resetForm()
			m.screen = screenHome
			m.err = nil
			return m, m.loadStats()
		case "tab", "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		case "ctrl+t":
			m.newCategory = m.nextCategory(m.newCategory, 1)
			if m.newCategory == models.AllCategories && m.ctrl.CategoryRequired() {
				m.newCategory = m.nextCategory(m.newCategory, 1)
			}
			return m, nil
		case "enter":
			if m.focus == fieldSource {
				m.inputs[m.focus].Blur()
				m.focus = fieldTarget
				return m, m.inputs[m.focus].Focus()
			}
			return m, m.addCard(models.CardInput{
				Source:     m.inputs[fieldSource].Value(),
				Target:     m.inputs[fieldTarget].Value(),
				CategoryID: m.newCategory,
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateDrill(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.drill.Phase == session.Complete {
		switch key.String() {
		case "r":
			return m, m.retry()
		case "enter", "esc", "q":
			return m, m.abandon()
		}
		return m, nil
	}

	switch key.String() {
	case " ", "enter":
		return m, m.reveal()
	case "1":
		return m, m.rate(session.Weak)
	case "2":
		return m, m.rate(session.Medium)
	case "3":
		return m, m.rate(session.Strong)
	case "esc", "q":
		return m, m.abandon()
	}
	return m, nil
}
