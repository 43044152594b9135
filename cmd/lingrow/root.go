package main

import (
	"lingrow/internal/config"
	"lingrow/internal/logger"

	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lingrow [image]",
		Short:         "Mockup viewer with canned text suggestions",
		Long:          `Shows a PNG mockup, rewrites text in a professional, neutral or cultural tone and keeps saved snippets in a local JSON file.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			image := ""
			if len(args) == 1 {
				image = args[0]
			}
			return NewApplication(cfg, log, version).Run(image)
		},
	}

	addPersistentFlags(rootCmd)
	rootCmd.AddCommand(
		NewAssetsCmd(),
		NewSuggestCmd(),
		NewEntriesCmd(),
	)
	return rootCmd
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", config.DefaultConfigFile, "YAML configuration file")
	cmd.PersistentFlags().String("store", "", "Path of the saved texts file")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
}

// loadSettings applies flags on top of the file and environment configuration.
func loadSettings(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if s, _ := cmd.Flags().GetString("store"); s != "" {
		cfg.StorePath = s
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logger.New(logger.ParseLevel(cfg.LogLevel), cfg.JSONLogs), nil
}
