package tui

import (
	"testing"
	"time"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/service"
	"github.com/DanRulev/easyflash.git/internal/session"
	mock_tui "github.com/DanRulev/easyflash.git/internal/tui/mock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID int64 = 1

func newModelMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_tui.MockControllerI)) Model {
	t.Helper()

	mockCtrl := mock_tui.NewMockControllerI(ctrl)
	if setupMock != nil {
		setupMock(mockCtrl)
	}

	return New(mockCtrl, userID, time.Second)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// press sends a key and feeds the resulting command's message back.
func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, cmd := update(t, m, key(s))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	return m
}

var (
	hola   = models.Card{ID: 1, Source: "hola", Target: "hello", CategoryID: 1}
	hidden = service.View{Mode: session.ModeNormal, Phase: session.Active, Card: hola, HasCard: true, Total: 2}
)

func TestModel_DrillFlow(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	revealed := hidden
	revealed.Revealed = true

	complete := service.View{Phase: session.Complete, Total: 1, Tally: session.Tally{Strong: 1}, Accuracy: 100}

	m := newModelMock(t, ctrl, func(mc *mock_tui.MockControllerI) {
		gomock.InOrder(
			mc.EXPECT().StartDrill(gomock.Any(), userID).Return(hidden, nil),
			mc.EXPECT().Reveal(gomock.Any(), userID).Return(revealed, nil),
			mc.EXPECT().Rate(gomock.Any(), userID, session.Strong).Return(complete, true, nil),
			mc.EXPECT().Abandon(gomock.Any(), userID).Return(nil),
		)
		mc.EXPECT().Streak(gomock.Any()).Return(2, nil)
		mc.EXPECT().Accuracy(gomock.Any(), userID).Return(100, nil)
		mc.EXPECT().LearnedCount().Return(4)
	})

	m = press(t, m, "p")
	require.Equal(t, screenDrill, m.screen)
	assert.Contains(t, m.View(), "Drill 1/2")
	assert.Contains(t, m.View(), "hola")
	assert.NotContains(t, m.View(), "hello")

	m = press(t, m, " ")
	assert.Contains(t, m.View(), "hello")

	m = press(t, m, "3")
	assert.Contains(t, m.View(), "Drill complete")
	assert.Contains(t, m.View(), "100%")

	m, cmd := update(t, m, key("enter"))
	m, cmd = update(t, m, cmd())
	require.Equal(t, screenHome, m.screen)
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Learned words: 4")
	assert.Contains(t, view, "Streak:        2 days")
}

func TestModel_EmptyDrill(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	m := newModelMock(t, ctrl, func(mc *mock_tui.MockControllerI) {
		mc.EXPECT().StartDifficult(gomock.Any(), userID).Return(service.View{}, session.ErrEmptyWorkingSet)
	})

	m = press(t, m, "d")
	assert.Equal(t, screenHome, m.screen)
	assert.Contains(t, m.View(), "No cards to drill here.")
}

func TestModel_AddWord(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	m := newModelMock(t, ctrl, func(mc *mock_tui.MockControllerI) {
		mc.EXPECT().CategoryRequired().Return(false).AnyTimes()
		mc.EXPECT().Categories().Return([]models.Category{{ID: 1, Name: "Greetings"}}).AnyTimes()
		mc.EXPECT().AddCard(gomock.Any(), models.CardInput{Source: "hola", Target: "hello", CategoryID: 1}).Return(hola, nil)
		mc.EXPECT().SelectedCategory(gomock.Any(), userID).Return(int64(0), nil)
		mc.EXPECT().Filtered(gomock.Any(), userID).Return([]models.Card{hola}, nil)
	})

	m, _ = update(t, m, key("a"))
	require.Equal(t, screenAdd, m.screen)
	assert.Contains(t, m.View(), "Category:    none")

	m, _ = update(t, m, key("hola"))
	m, _ = update(t, m, key("enter"))
	m, _ = update(t, m, key("hello"))
	m, _ = update(t, m, key("ctrl+t"))
	assert.Contains(t, m.View(), "Category:    Greetings")

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	m, cmd = update(t, m, cmd())
	require.Equal(t, screenWords, m.screen)
	m, _ = update(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Saved hola")
	assert.Contains(t, view, "hola →")
}

func TestModel_AddWordValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	m := newModelMock(t, ctrl, func(mc *mock_tui.MockControllerI) {
		mc.EXPECT().CategoryRequired().Return(false)
		mc.EXPECT().AddCard(gomock.Any(), models.CardInput{Source: "hola"}).
			Return(models.Card{}, &models.ValidationError{Field: "target", Reason: "is required"})
	})

	m, _ = update(t, m, key("a"))
	m, _ = update(t, m, key("hola"))
	m, _ = update(t, m, key("enter"))

	m = press(t, m, "enter")
	assert.Equal(t, screenAdd, m.screen)
	assert.Contains(t, m.View(), "validation failed: target is required")
}

func TestModel_Words(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	cards := []models.Card{hola, {ID: 2, Source: "pan", Target: "bread", CategoryID: 2}}

	m := newModelMock(t, ctrl, func(mc *mock_tui.MockControllerI) {
		mc.EXPECT().Categories().Return([]models.Category{{ID: 1, Name: "Greetings"}, {ID: 2, Name: "Food"}}).AnyTimes()
		gomock.InOrder(
			mc.EXPECT().SelectedCategory(gomock.Any(), userID).Return(int64(0), nil),
			mc.EXPECT().SelectCategory(gomock.Any(), userID, int64(1)).Return(nil),
			mc.EXPECT().SelectedCategory(gomock.Any(), userID).Return(int64(1), nil),
			mc.EXPECT().SelectCategory(gomock.Any(), userID, int64(0)).Return(nil),
			mc.EXPECT().SelectedCategory(gomock.Any(), userID).Return(int64(0), nil),
			mc.EXPECT().DeleteCard(gomock.Any(), int64(2)).Return(nil),
			mc.EXPECT().SelectedCategory(gomock.Any(), userID).Return(int64(0), nil),
		)
		gomock.InOrder(
			mc.EXPECT().Filtered(gomock.Any(), userID).Return(cards, nil),
			mc.EXPECT().Filtered(gomock.Any(), userID).Return(cards[:1], nil),
			mc.EXPECT().Filtered(gomock.Any(), userID).Return(cards, nil),
			mc.EXPECT().Filtered(gomock.Any(), userID).Return(cards[:1], nil),
		)
	})

	m = drain(t, m, "w")
	assert.Contains(t, m.View(), "Words: All words")
	assert.Len(t, m.cards, 2)

	m = drain(t, m, "right")
	assert.Equal(t, int64(1), m.categoryID)
	assert.Contains(t, m.View(), "Words: Greetings")
	assert.Len(t, m.cards, 1)

	m = drain(t, m, "left")
	assert.Equal(t, int64(0), m.categoryID)
	assert.Len(t, m.cards, 2)

	m, _ = update(t, m, key("j"))
	assert.Equal(t, 1, m.cursor)

	m = drain(t, m, "x")
	assert.Len(t, m.cards, 1)
	assert.Equal(t, 0, m.cursor)
}

// drain sends a key and keeps feeding command results back until none is left.
func drain(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, cmd := update(t, m, key(s))
	for cmd != nil {
		m, cmd = update(t, m, cmd())
	}
	return m
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	m := newModelMock(t, ctrl, nil)

	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
