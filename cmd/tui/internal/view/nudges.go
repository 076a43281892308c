package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/nudge"
	"github.com/arjunsachdev/regretly/internal/spend"
)

var nudgeKindStyles = map[nudge.Kind]lipgloss.Style{
	nudge.KindWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	nudge.KindTip:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	nudge.KindCelebration: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
}

type NudgesModel struct {
	CommonModel
	spendService *spend.Service

	nudges         []nudge.Nudge
	recommendation string
}

func NewNudgesModel(svc *spend.Service) NudgesModel {
	return NudgesModel{spendService: svc}
}

func (m NudgesModel) Title() string { return "Nudges" }

func (m NudgesModel) ShortHelp() string { return "Esc: back" }

func (m NudgesModel) Init() tea.Cmd {
	return m.loadNudgesCmd()
}

func (m NudgesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case nudgesMsg:
		m.nudges = msg.nudges
		m.recommendation = msg.recommendation

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		}
	}

	return m, nil
}

func (m NudgesModel) View() string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("Nudges") + "\n\n")

	if len(m.nudges) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Nothing to flag this week.") + "\n")
	}

	for _, n := range m.nudges {
		style, ok := nudgeKindStyles[n.Kind]
		if !ok {
			style = lipgloss.NewStyle()
		}

		b.WriteString(style.Bold(true).Render(fmt.Sprintf("%s %s", n.Icon, n.Title)) + "\n")
		b.WriteString("  " + n.Message + "\n\n")
	}

	b.WriteString(reportSectionStyle.Render("This month") + "\n")
	b.WriteString(m.recommendation + "\n")

	return lipgloss.NewStyle().Padding(1).Render(
		reportBoxStyle.Render(b.String()) + "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)
}

type nudgesMsg struct {
	nudges         []nudge.Nudge
	recommendation string
}

func (m NudgesModel) loadNudgesCmd() tea.Cmd {
	return func() tea.Msg {
		spends := m.spendService.List()
		now := time.Now()

		return nudgesMsg{
			nudges:         nudge.Generate(spends, now),
			recommendation: nudge.MonthlyRecommendation(spends, now),
		}
	}
}
