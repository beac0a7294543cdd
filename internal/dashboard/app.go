// Package dashboard is an interactive terminal front end for the inference
// façade: a form with the eight patient measurements and a result panel with
// the risk gauge, risk factors and recommendations.
package dashboard

import (
	"diabetes/internal/riskfactor"
	"diabetes/pkg/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type model struct {
	theme Theme
	deps  Deps

	inputs []textinput.Model
	focus  int
	gauge  progress.Model

	// fieldErrs holds the messages of the last rejected submission keyed by feature name.
	fieldErrs map[string]string
	toast     string
	running   bool

	result   *domain.PredictionOutcome
	analysis riskfactor.Analysis
}

// Run starts the dashboard and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.deps.Logger), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	m := model{
		theme:     DefaultTheme(),
		deps:      deps,
		inputs:    make([]textinput.Model, domain.NumFeatures),
		gauge:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		fieldErrs: map[string]string{},
	}
	m.gauge.Width = 40

	for i, f := range domain.Features {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 12
		ti.Width = 12
		ti.Placeholder = formatValue(f, f.Default)
		ti.SetValue(formatValue(f, f.Default))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

func (m model) available() bool {
	return m.deps.Predictor != nil && m.deps.Predictor.Ready()
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 40
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.gauge.Width = w
		}

		return m, nil

	case predictionDoneMsg:
		m.running = false
		if msg.err != nil {
			m.deps.Logger.Error("prediction failed", zap.Error(msg.err))
			m.result = nil
			m.toast = userMessage(msg.err)

			return m, nil
		}
		outcome := msg.outcome
		m.result = &outcome
		m.analysis = riskfactor.Analyze(msg.record)
		m.toast = ""

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if !m.available() {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		case "ctrl+r":
			m.reset()

			return m, nil
		case "enter":
			return m.submit()
		}
	}

	if !m.available() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

func (m *model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)

	return m.inputs[m.focus].Focus()
}

func (m *model) reset() {
	for i, f := range domain.Features {
		m.inputs[i].SetValue(formatValue(f, f.Default))
	}
	m.fieldErrs = map[string]string{}
	m.result = nil
	m.toast = ""
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	record, fieldErrs := recordFromInputs(m.inputs)
	m.fieldErrs = fieldErrs
	if len(fieldErrs) > 0 {
		m.result = nil
		m.toast = "Fix the highlighted fields"

		return m, nil
	}

	m.running = true
	m.toast = "Predicting..."

	return m, cmdPredict(m.deps.Predictor, record)
}
