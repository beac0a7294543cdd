package main

import (
	"diabetes/internal/config"
	"diabetes/internal/dashboard"
	"diabetes/internal/inference"
	"diabetes/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
)

func dashboardCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Starts the interactive terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			// the terminal belongs to the dashboard, logs only go to the file
			opts := logOptions(cfg)
			opts.DisableConsole = true
			logger.Setup(cfg.Environment, opts)

			ctx := cmd.Context()
			predictor, err := inference.NewCache(loadPredictor(ctx, cfg), cfg.Prediction.CacheSize)
			if err != nil {
				return fmt.Errorf("could not create outcome cache: %w", err)
			}

			return dashboard.Run(dashboard.Deps{
				Predictor: predictor,
				Logger:    logger.Get(ctx),
			})
		},
	}

	return cmd
}
