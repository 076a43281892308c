package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/regret"
	"github.com/arjunsachdev/regretly/internal/spend"
)

var (
	reportTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	reportSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
	reportBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

type ReportModel struct {
	CommonModel
	spendService *spend.Service

	stats spend.MonthlyStats
}

func NewReportModel(svc *spend.Service) ReportModel {
	return ReportModel{spendService: svc}
}

func (m ReportModel) Title() string { return "Monthly Report" }

func (m ReportModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m ReportModel) Init() tea.Cmd {
	return m.loadStatsCmd()
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		m.stats = msg.stats
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			return m, m.loadStatsCmd()
		}
	}

	return m, nil
}

func (m ReportModel) View() string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("This Month") + "\n\n")

	b.WriteString(fmt.Sprintf("Total spent:       %s\n", FormatAmount(m.stats.TotalSpent)))
	b.WriteString(fmt.Sprintf("Future value lost: %s (10y at %.1f%%)\n", FormatAmount(m.stats.TotalFutureLost), m.spendService.Rate()))
	b.WriteString(fmt.Sprintf("Impulse-free:      %d days\n", m.stats.StreakDays))

	if m.stats.RoundedSavings > 0 {
		b.WriteString(fmt.Sprintf("Round-up savings:  %s\n", FormatAmount(m.stats.RoundedSavings)))
	}

	b.WriteString("\n" + reportSectionStyle.Render("By category") + "\n")
	b.WriteString(breakdownView(m.stats.ByCategory))

	b.WriteString("\n" + reportSectionStyle.Render("By mood") + "\n")
	b.WriteString(breakdownView(m.stats.ByMood))

	b.WriteString("\n" + reportSectionStyle.Render("By type") + "\n")
	b.WriteString(breakdownView(m.stats.ByType))

	if len(m.stats.TopRegrets) > 0 {
		b.WriteString("\n" + reportSectionStyle.Render("Biggest regrets") + "\n")
		b.WriteString(regretListView(m.stats.TopRegrets, m.spendService.Rate()))
	}

	if len(m.stats.LeastRegrets) > 0 {
		b.WriteString("\n" + reportSectionStyle.Render("Least regretted") + "\n")
		b.WriteString(regretListView(m.stats.LeastRegrets, m.spendService.Rate()))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		reportBoxStyle.Render(b.String()) + "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	)
}

func breakdownView[K ~string](totals map[K]float64) string {
	if len(totals) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("  nothing logged") + "\n"
	}

	keys := make([]K, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return totals[keys[i]] > totals[keys[j]] })

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", string(k), FormatAmount(totals[k])))
	}

	return b.String()
}

func regretListView(spends []*spend.Spend, rate float64) string {
	var b strings.Builder

	for _, sp := range spends {
		score := regret.Evaluate(sp.Amount, rate, sp.Type)
		label := LevelStyle(score.Level).Render(string(score.Level))

		desc := sp.Description
		if desc == "" {
			desc = string(sp.Category)
		}

		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n", FormatDate(sp.Date), FormatAmount(sp.Amount), label, desc))
	}

	return b.String()
}

type statsMsg struct {
	stats spend.MonthlyStats
}

func (m ReportModel) loadStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return statsMsg{stats: m.spendService.MonthlyStats()}
	}
}
