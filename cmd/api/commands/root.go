package commands

import (
	"os"

	"github.com/spf13/cobra"

	"license-management/internal/config"
	"license-management/internal/platform/logger"
)

var (
	configPath string
	cfg        *config.Config
	log        logger.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "licenses",
		Short:         "License management module (API, dashboard and shared store)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
					return err
				}
			}

			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			log = logger.FromConfig(cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml si existe)")

	root.AddCommand(serveCmd(), summaryCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		if log == nil {
			log = logger.New(logger.Options{App: "license-management"})
		}
		log.Error("command failed", logger.Fields{"err": err})
		return err
	}
	return nil
}
