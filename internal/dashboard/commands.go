package dashboard

import (
	"diabetes/internal/inference"
	"diabetes/pkg/domain"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdPredict(p inference.Predictor, record domain.PatientRecord) tea.Cmd {
	return func() tea.Msg {
		outcome, err := p.Predict(record)

		return predictionDoneMsg{record: record, outcome: outcome, err: err}
	}
}
