package dashboard

import (
	"diabetes/internal/riskfactor"
	"diabetes/pkg/domain"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Diabetes Risk Dashboard") + "\n"

	if !m.available() {
		return wrap.Render(header + "\n" + m.unavailableView())
	}

	header += m.theme.Subtitle.Render("Model: "+m.deps.Predictor.ModelName()) + "\n"
	help := m.theme.Help.Render("tab/↑/↓ move • enter predict • ctrl+r reset • esc quit")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Card.Render(m.formView()),
		"  ",
		m.theme.Card.Render(m.resultView()),
	)

	return wrap.Render(header + "\n" + body + "\n" + help)
}

func (m model) unavailableView() string {
	reason := "no artifacts configured"
	if m.deps.Predictor != nil {
		if err := m.deps.Predictor.Err(); err != nil {
			reason = err.Error()
		}
	}

	return m.theme.Error.Render(fmt.Sprintf("%s\n\n%s\n\n%s",
		m.theme.Title.Render("⚠ Models not loaded"),
		"Predictions are unavailable: "+reason,
		m.theme.Help.Render("Check the artifact paths in the configuration • q quit"),
	))
}

func (m model) formView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Patient Information"))
	b.WriteString("\n\n")

	for i, f := range domain.Features {
		label := fmt.Sprintf("%s (%s)", featureTitle(f.Name), f.Unit)
		style := m.theme.Label
		if i == m.focus {
			style = m.theme.Focused
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")

		hint := fmt.Sprintf("%s-%s", formatValue(f, f.Min), formatValue(f, f.Max))
		if msg, ok := m.fieldErrs[f.Name]; ok {
			b.WriteString(m.theme.High.Render("  " + msg))
		} else {
			b.WriteString(m.theme.Help.Render("  " + hint))
		}
		b.WriteString("\n")
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(m.toast))
	}

	return b.String()
}

func (m model) resultView() string {
	if m.result == nil {
		return m.theme.Subtitle.Render("Enter the patient measurements and press enter.")
	}

	r := m.result
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Risk Assessment"))
	b.WriteString("\n\n")

	b.WriteString(m.gauge.ViewAs(r.ProbabilityPositive / 100))
	b.WriteString(fmt.Sprintf(" %.1f%%\n", r.ProbabilityPositive))
	b.WriteString(m.theme.Tier(r.RiskTier).Render(string(r.RiskTier) + " RISK"))
	b.WriteString("\n")
	b.WriteString(r.Message)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Non-diabetic: %.1f%%   Diabetic: %.1f%%\n\n",
		r.ProbabilityNegative, r.ProbabilityPositive))

	b.WriteString(m.theme.Title.Render("Risk Factors"))
	b.WriteString("\n")
	if len(m.analysis.RiskFactors) == 0 {
		b.WriteString(m.theme.Positive.Render("  No significant risk factors identified"))
		b.WriteString("\n")
	}
	for _, f := range m.analysis.RiskFactors {
		style := m.theme.Moderate
		if f.Severity == riskfactor.SeverityHigh {
			style = m.theme.High
		}
		b.WriteString(style.Render("  ! " + f.Message))
		b.WriteString("\n")
	}
	for _, f := range m.analysis.PositiveFactors {
		b.WriteString(m.theme.Positive.Render("  ✓ " + f.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(riskfactor.RecommendationsTitle(r.IsPositiveClass)))
	b.WriteString("\n")
	for _, rec := range riskfactor.Recommendations(r.IsPositiveClass) {
		b.WriteString(fmt.Sprintf("  • %s: %s\n", rec.Title, rec.Description))
	}

	return b.String()
}

// featureTitle turns a feature name such as blood_pressure into "Blood Pressure".
func featureTitle(name string) string {
	if name == domain.FeatureBMI {
		return "BMI"
	}

	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	return strings.Join(words, " ")
}
