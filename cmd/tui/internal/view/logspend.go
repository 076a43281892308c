package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/alternatives"
	"github.com/arjunsachdev/regretly/internal/projection"
	"github.com/arjunsachdev/regretly/internal/regret"
	"github.com/arjunsachdev/regretly/internal/spend"
)

type logState int

const (
	logStateForm logState = iota
	logStateSaving
	logStateClassify
	logStateDone
)

// LogSpendModel drives the logging flow: form, save, regret readout, then
// the two-step need/want/impulse honesty check.
type LogSpendModel struct {
	CommonModel
	svc *spend.Service

	state logState
	form  *huh.Form

	// Form field bindings
	formAmount   string
	formCategory spend.Category
	formMood     spend.Mood
	formDate     string
	formDesc     string

	logged      *spend.Spend
	alternative alternatives.Alternative
	status      string
}

func NewLogSpendModel(svc *spend.Service) LogSpendModel {
	m := LogSpendModel{
		svc:          svc,
		formCategory: spend.CategoryFood,
		formMood:     spend.MoodHungry,
		formDate:     FormatDate(time.Now()),
	}
	m.form = m.buildForm()

	return m
}

func (m LogSpendModel) Title() string { return "Log a Spend" }

func (m LogSpendModel) ShortHelp() string {
	switch m.state {
	case logStateForm:
		return "Esc: back | Enter/Tab: navigate form"
	case logStateClassify:
		return "n: need | w: want | i: impulse | Esc: skip"
	default:
		return "Esc: back"
	}
}

func (m LogSpendModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("250").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),

			huh.NewSelect[spend.Category]().
				Key("category").
				Title("Category").
				Options(huh.NewOptions(spend.Categories()...)...).
				Value(&m.formCategory),

			huh.NewSelect[spend.Mood]().
				Key("mood").
				Title("How were you feeling?").
				Options(huh.NewOptions(spend.Moods()...)...).
				Value(&m.formMood),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Note (optional)").
				Value(&m.formDesc),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m LogSpendModel) Init() tea.Cmd {
	return m.form.Init()
}

type spendLoggedMsg struct {
	sp  *spend.Spend
	err error
}

func (m LogSpendModel) logCmd() tea.Cmd {
	// Read through the form accessors; the model value is a copy.
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("amount")), 64)
	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.form.GetString("date")))

	category, _ := m.form.Get("category").(spend.Category)
	mood, _ := m.form.Get("mood").(spend.Mood)

	params := spend.LogParams{
		Amount:      amount,
		Category:    category,
		Mood:        mood,
		Date:        date,
		Description: strings.TrimSpace(m.form.GetString("description")),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sp, err := m.svc.Log(ctx, params)

		return spendLoggedMsg{sp: sp, err: err}
	}
}

type spendClassifiedMsg struct {
	typ spend.Type
	err error
}

func (m LogSpendModel) classifyCmd(typ spend.Type) tea.Cmd {
	id := m.logged.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.svc.Classify(ctx, id, typ)

		return spendClassifiedMsg{typ: typ, err: err}
	}
}

func (m LogSpendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spendLoggedMsg:
		if msg.err != nil {
			// The form data is kept so the user can retry.
			m.state = logStateForm
			m.status = fmt.Sprintf("Could not save: %v", msg.err)

			return m, nil
		}

		m.logged = msg.sp
		m.alternative = alternatives.Random(msg.sp.Category)
		m.state = logStateClassify
		m.status = ""

		return m, nil

	case spendClassifiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not classify: %v", msg.err)
			return m, nil
		}

		m.state = logStateDone
		m.status = fmt.Sprintf("Logged as %s.", msg.typ)

		return m, nil
	}

	switch m.state {
	case logStateForm:
		return m.updateForm(msg)
	case logStateClassify, logStateDone:
		return m.updateAfterSave(msg)
	}

	return m, nil
}

func (m LogSpendModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = logStateSaving

	return m, m.logCmd()
}

func (m LogSpendModel) updateAfterSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if m.state != logStateClassify {
		return m, nil
	}

	switch keyMsg.String() {
	case "n":
		return m, m.classifyCmd(spend.TypeNeed)
	case "w":
		return m, m.classifyCmd(spend.TypeWant)
	case "i":
		return m, m.classifyCmd(spend.TypeImpulse)
	}

	return m, nil
}

func (m LogSpendModel) View() string {
	switch m.state {
	case logStateForm:
		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) + "\n\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.form.View())

	case logStateSaving:
		return lipgloss.NewStyle().Padding(2).Render("Saving...")

	case logStateClassify, logStateDone:
		return lipgloss.NewStyle().Padding(1).Render(m.resultView())
	}

	return ""
}

func (m LogSpendModel) resultView() string {
	if m.logged == nil {
		return ""
	}

	rate := m.svc.Rate()
	score := regret.Evaluate(m.logged.Amount, rate, m.logged.Type)
	fv := projection.Horizons(m.logged.Amount, rate)

	var b strings.Builder

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(box.Render(fmt.Sprintf(
		"Logged %s on %s (%s)\nRegret: %s\nIf invested at %.1f%%: 1y %s | 5y %s | 10y %s\nValue lost over 10 years: %s",
		FormatAmount(m.logged.Amount),
		FormatDate(m.logged.Date),
		m.logged.Category,
		LevelStyle(score.Level).Render(fmt.Sprintf("%.0f/100 (%s)", score.Value, score.Level)),
		rate,
		FormatAmount(fv.Year1),
		FormatAmount(fv.Year5),
		FormatAmount(fv.Year10),
		FormatAmount(projection.OpportunityCost(m.logged.Amount, rate)),
	)))

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Instead of %q: %s (saves ~%s)\n",
		m.alternative.Icon, m.alternative.Original, m.alternative.Suggestion, FormatAmount(m.alternative.Savings)))

	if m.state == logStateClassify {
		b.WriteString("\nBe honest, what was it?  [n]eed  [w]ant  [i]mpulse\n")
	}

	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return b.String()
}
