package main

import (
	"diabetes/internal/config"
	"diabetes/internal/inference"
	"diabetes/pkg/artifact"
	"diabetes/pkg/domain"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// checkCommand loads the configured artifacts and reports what they contain,
// then runs a prediction for the default patient record.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Verifies that the model and scaler artifacts can be loaded",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs []error

			model, err := artifact.LoadModel(cfg.Artifacts.ModelPath)
			if err != nil {
				fmt.Fprintf(out, "%s error: %v\n", cfg.Artifacts.ModelPath, err)
				errs = append(errs, err)
			} else {
				fmt.Fprintf(out, "%s loaded: %s (%s, %d features, probabilities: %t)\n",
					cfg.Artifacts.ModelPath, model.Name(), model.Kind(), model.NumFeatures(),
					artifact.IsCalibrated(model))
			}

			scaler, err := artifact.LoadScaler(cfg.Artifacts.ScalerPath)
			if err != nil {
				fmt.Fprintf(out, "%s error: %v\n", cfg.Artifacts.ScalerPath, err)
				errs = append(errs, err)
			} else {
				fmt.Fprintf(out, "%s loaded: %s (%d features)\n",
					cfg.Artifacts.ScalerPath, scaler.Kind(), scaler.NumFeatures())
			}

			if len(errs) > 0 {
				return errors.Join(errs...)
			}

			outcome, err := inference.New(model, scaler).Predict(domain.DefaultPatientRecord())
			if err != nil {
				return fmt.Errorf("could not predict the default patient record: %w", err)
			}
			fmt.Fprintf(out, "default patient: %s risk (%.2f%%)\n", outcome.RiskTier, outcome.ProbabilityPositive)

			return nil
		},
	}

	return cmd
}
