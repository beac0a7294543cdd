package main

import (
	"diabetes/internal/config"
	"diabetes/internal/riskfactor"
	"diabetes/pkg/domain"
	"fmt"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

func predictCommand(cfg *config.Config) *cobra.Command {
	values := make(map[string]*float64, domain.NumFeatures)
	var withFactors bool

	cmd := &cobra.Command{
		Use:          "predict",
		Short:        "Predicts diabetes risk for a single patient and prints the outcome as JSON",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in := make(map[string]float64, len(values))
			for name, v := range values {
				in[name] = *v
			}
			record, err := domain.RecordFromValues(in)
			if err != nil {
				return fmt.Errorf("could not build patient record: %w", err)
			}

			outcome, err := loadPredictor(ctx, cfg).Predict(record)
			if err != nil {
				return fmt.Errorf("could not predict: %w", err)
			}

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			e.SetIdent(2)
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("prediction")
				e.Int(outcome.Label)
				e.FieldStart("is_diabetic")
				e.Bool(outcome.IsPositiveClass)
				e.FieldStart("probability_negative")
				e.Float64(outcome.ProbabilityNegative)
				e.FieldStart("probability_positive")
				e.Float64(outcome.ProbabilityPositive)
				e.FieldStart("risk_level")
				e.Str(string(outcome.RiskTier))
				e.FieldStart("message")
				e.Str(outcome.Message)
				if withFactors {
					analysis := riskfactor.Analyze(record)
					e.FieldStart("risk_factors")
					encodeMessages(e, analysis.RiskFactors)
					e.FieldStart("positive_factors")
					encodeMessages(e, analysis.PositiveFactors)
				}
			})

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.String())

			return err
		},
	}

	for _, f := range domain.Features {
		v := f.Default
		values[f.Name] = &v
		cmd.Flags().Float64Var(values[f.Name], f.Name, f.Default,
			fmt.Sprintf("%s in %s (%g-%g)", f.Name, f.Unit, f.Min, f.Max))
	}
	cmd.Flags().BoolVar(&withFactors, "risk-factors", false, "Include the rule-based risk factors")

	return cmd
}

func encodeMessages(e *jx.Encoder, factors []riskfactor.Factor) {
	e.Arr(func(e *jx.Encoder) {
		for _, f := range factors {
			e.Str(f.Message)
		}
	})
}
