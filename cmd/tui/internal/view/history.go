package view

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/regret"
	"github.com/arjunsachdev/regretly/internal/spend"
)

// spendItem wraps a record to implement list.Item.
type spendItem struct {
	sp   *spend.Spend
	rate float64
}

func (i spendItem) Title() string {
	score := regret.Evaluate(i.sp.Amount, i.rate, i.sp.Type)
	level := LevelStyle(score.Level).Render(fmt.Sprintf("[%s]", score.Level))

	typ := string(i.sp.Type)
	if typ == "" {
		typ = "unclassified"
	}

	return fmt.Sprintf("%s  %s  %s  %s", FormatDate(i.sp.Date), FormatAmount(i.sp.Amount), level, typ)
}

func (i spendItem) Description() string {
	if i.sp.Description != "" {
		return fmt.Sprintf("%s, %s: %s", i.sp.Category, i.sp.Mood, i.sp.Description)
	}

	return fmt.Sprintf("%s, %s", i.sp.Category, i.sp.Mood)
}

func (i spendItem) FilterValue() string {
	return string(i.sp.Category) + " " + i.sp.Description
}

type HistoryModel struct {
	CommonModel
	spendService *spend.Service

	list   list.Model
	status string
}

func NewHistoryModel(svc *spend.Service) HistoryModel {
	l := list.New([]list.Item{}, spendItemDelegate{}, 0, 0)
	l.Title = "Spend History"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return HistoryModel{
		spendService: svc,
		list:         l,
	}
}

func (m HistoryModel) Title() string { return "Spend History" }

func (m HistoryModel) ShortHelp() string {
	return "Esc: back | n/w/i: classify selected | /: filter"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.list.SetItems(msg.items)

		if len(msg.items) == 0 {
			m.status = "No spends logged yet."
		}

		return m, nil

	case classifiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Marked as %s.", msg.typ)

		return m, m.refreshCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "n":
			return m, m.classifyCmd(spend.TypeNeed)
		case "w":
			return m, m.classifyCmd(spend.TypeWant)
		case "i":
			return m, m.classifyCmd(spend.TypeImpulse)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	statusLine := ""
	if m.status != "" {
		statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
	}

	return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())
}

type historyMsg struct {
	items []list.Item
}

func (m HistoryModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		spends := m.spendService.List()
		rate := m.spendService.Rate()

		items := make([]list.Item, len(spends))
		for i, sp := range spends {
			items[i] = spendItem{sp: sp, rate: rate}
		}

		return historyMsg{items: items}
	}
}

type classifiedMsg struct {
	typ spend.Type
	err error
}

func (m HistoryModel) classifyCmd(typ spend.Type) tea.Cmd {
	selected, ok := m.list.SelectedItem().(spendItem)
	if !ok {
		return nil
	}

	id := selected.sp.ID
	svc := m.spendService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return classifiedMsg{typ: typ, err: svc.Classify(ctx, id, typ)}
	}
}

// spendItemDelegate renders items in the list.
type spendItemDelegate struct{}

func (d spendItemDelegate) Height() int                             { return 2 }
func (d spendItemDelegate) Spacing() int                            { return 0 }
func (d spendItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d spendItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(spendItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(i.Description()))
}
