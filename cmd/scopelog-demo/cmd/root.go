package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlehnert/scopelog/config"
	"github.com/mlehnert/scopelog/core"
	"github.com/mlehnert/scopelog/scope"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// levelOverride replaces the configured minimum level when set.
	levelOverride string

	// rootCmd emits a handful of sample records through a configured
	// pipeline, mainly to eyeball formatter and sink settings.
	rootCmd = &cobra.Command{
		Use:   "scopelog-demo",
		Short: "Emit sample log records through a configured pipeline",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if levelOverride != "" {
				cfg.Level = levelOverride
			}

			log, err := config.Build(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			log.Tracef("pipeline ready, minimum level %s", cfg.Level)
			log.Info("starting demo run")

			done := log.BeginScope(scope.Fields(
				scope.Field{Key: scope.TemplateKey, Value: "order {orderId}"},
				scope.Field{Key: "orderId", Value: 4711},
			))
			log.Debug("reserving stock")
			log.Log(core.WarningLevel, core.EventID{ID: 17, Name: "PaymentRetry"},
				"card declined, retrying", nil, func(state any, _ error) string {
					return state.(string)
				})
			done.End()

			log.Error("demo failure", errors.New("synthetic error for the exception line"))
			log.Info("demo run finished")
			return nil
		},
	}
)

// loadConfig reads the settings file when present and falls back to a
// plain console configuration otherwise, so the demo runs without any
// setup.
func loadConfig() (*config.Config, error) {
	if configPath != config.DefaultFilename {
		return config.Load(configPath)
	}
	if _, err := os.Stat(configPath); err == nil {
		return config.Load(configPath)
	}
	return &config.Config{Category: "demo", Level: "trace", UTC: true}, nil
}

// Execute runs the demo CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&levelOverride, "level", "l", "", "override the configured minimum level")
}
