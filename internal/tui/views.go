package tui

import (
	"fmt"
	"strings"

	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/session"
)

const barWidth = 30

func (m Model) View() string {
	var b strings.Builder

	switch m.screen {
	case screenWords:
		m.viewWords(&b)
	case screenAdd:
		m.viewAdd(&b)
	case screenDrill:
		if m.drill.Phase == session.Complete {
			m.viewSummary(&b)
		} else {
			m.viewCard(&b)
		}
	default:
		m.viewHome(&b)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleError.Render("Error: " + m.err.Error()))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styleSubtle.Render(m.status))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewHome(b *strings.Builder) {
	b.WriteString(styleHeader.Render("easyflash"))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "Learned words: %d\n", m.learned)
	fmt.Fprintf(b, "Streak:        %d days\n", m.streak)
	fmt.Fprintf(b, "Accuracy:      %s %d%%\n\n", renderBar(m.accuracy), m.accuracy)
	b.WriteString(styleSubtle.Render("p play · d difficult words · w words · a add word · q quit"))
}

func (m Model) categoryName(id int64) string {
	if id == models.AllCategories {
		return "All words"
	}
	for _, c := range m.ctrl.Categories() {
		if c.ID == id {
			return c.Name
		}
	}
	return "No category"
}

func (m Model) viewWords(b *strings.Builder) {
	b.WriteString(styleHeader.Render("Words: " + m.categoryName(m.categoryID)))
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		b.WriteString("No words here yet.\n\n")
	}
	for i, card := range m.cards {
		cursor := " "
		if i == m.cursor {
			cursor = styleCursor.Render(">")
		}
		fmt.Fprintf(b, "%s %s → %s %s\n", cursor, card.Source, styleTarget.Render(card.Target), styleSubtle.Render(fmt.Sprintf("(%d)", card.Progress)))
	}

	b.WriteString("\n")
	b.WriteString(styleSubtle.Render("↑/↓ move · ←/→ category · x delete · a add · p play · esc back"))
}

func (m Model) viewAdd(b *strings.Builder) {
	b.WriteString(styleHeader.Render("Add word"))
	b.WriteString("\n\n")
	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	category := "none"
	if m.newCategory != models.AllCategories {
		category = m.categoryName(m.newCategory)
	}
	fmt.Fprintf(b, "Category:    %s\n\n", category)
	b.WriteString(styleSubtle.Render("tab next field · ctrl+t category · enter save · esc cancel"))
}

func (m Model) viewCard(b *strings.Builder) {
	title := "Drill"
	if m.drill.Mode == session.ModeDifficult {
		title = "Difficult words"
	}
	b.WriteString(styleHeader.Render(fmt.Sprintf("%s %d/%d", title, m.drill.Position+1, m.drill.Total)))
	b.WriteString("\n\n")

	face := m.drill.Card.Source
	if m.drill.Revealed {
		face += "\n\n" + styleTarget.Render(m.drill.Card.Target)
	}
	b.WriteString(styleCard.Render(face))
	b.WriteString("\n\n")

	if m.drill.Revealed {
		fmt.Fprintf(b, "%s  %s  %s\n", styleWeak.Render("1 weak"), styleMedium.Render("2 medium"), styleStrong.Render("3 strong"))
	} else {
		b.WriteString(styleSubtle.Render("space show translation"))
		b.WriteString("\n")
	}
	b.WriteString(styleSubtle.Render("esc stop"))
}

func (m Model) viewSummary(b *strings.Builder) {
	tally := m.drill.Tally
	b.WriteString(styleHeader.Render("Drill complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "%s %d\n", styleWeak.Render("Weak:  "), tally.Weak)
	fmt.Fprintf(b, "%s %d\n", styleMedium.Render("Medium:"), tally.Medium)
	fmt.Fprintf(b, "%s %d\n\n", styleStrong.Render("Strong:"), tally.Strong)
	fmt.Fprintf(b, "Accuracy: %s %d%%\n\n", renderBar(m.drill.Accuracy), m.drill.Accuracy)
	b.WriteString(styleSubtle.Render("r play again · enter back"))
}

func renderBar(percent int) string {
	filled := percent * barWidth / 100
	return strings.Repeat(styleBarFull.String(), filled) + strings.Repeat(styleBarLeft.String(), barWidth-filled)
}
