package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/projection"
	"github.com/arjunsachdev/regretly/internal/settings"
)

type SettingsModel struct {
	CommonModel
	store *settings.Store

	rate   float64
	status string
}

func NewSettingsModel(store *settings.Store) SettingsModel {
	return SettingsModel{
		store: store,
		rate:  store.Rate(),
	}
}

func (m SettingsModel) Title() string { return "Settings" }

func (m SettingsModel) ShortHelp() string {
	return "Esc: back | Left/Right: adjust rate | Enter: save"
}

func (m SettingsModel) Init() tea.Cmd {
	return nil
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveRateMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = "Saved."

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "left", "h", "-":
			if m.rate-settings.RateStep >= settings.MinRate {
				m.rate -= settings.RateStep
				m.status = ""
			}

			return m, nil
		case "right", "l", "+":
			if m.rate+settings.RateStep <= settings.MaxRate {
				m.rate += settings.RateStep
				m.status = ""
			}

			return m, nil
		case "enter":
			return m, m.saveRateCmd()
		}
	}

	return m, nil
}

func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("Expected annual return") + "\n\n")
	b.WriteString(rateSliderView(m.rate) + "\n\n")

	b.WriteString(fmt.Sprintf(
		"At %.1f%%, %s invested today is worth %s in 10 years.\n",
		m.rate,
		FormatAmount(1000),
		FormatAmount(projection.Project(1000, m.rate, 10)),
	))

	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status) + "\n")
	}

	return lipgloss.NewStyle().Padding(1).Render(
		reportBoxStyle.Render(b.String()) + "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)
}

func rateSliderView(rate float64) string {
	steps := int((settings.MaxRate-settings.MinRate)/settings.RateStep) + 1
	pos := int((rate - settings.MinRate) / settings.RateStep)

	var b strings.Builder
	for i := 0; i < steps; i++ {
		if i == pos {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("●"))
			continue
		}

		b.WriteString(lipgloss.NewStyle().Faint(true).Render("─"))
	}

	return fmt.Sprintf("%.0f%%  %s  %.0f%%   current: %.1f%%", settings.MinRate, b.String(), settings.MaxRate, rate)
}

type saveRateMsg struct {
	err error
}

func (m SettingsModel) saveRateCmd() tea.Cmd {
	rate := m.rate
	store := m.store

	return func() tea.Msg {
		return saveRateMsg{err: store.SetRate(rate)}
	}
}
