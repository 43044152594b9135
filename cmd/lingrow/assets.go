package main

import (
	"lingrow/internal/assets"

	"github.com/spf13/cobra"
)

func NewAssetsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Draw the placeholder logo and navigation icons",
		Long:  `Writes assets/lingrow_logo.png and icons/{home,explore,write,profile}.png under --dir.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return assets.Generate(dir, log)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write into")
	return cmd
}
