package main

import (
	"fmt"

	"lingrow/internal/store"

	"github.com/spf13/cobra"
)

func NewEntriesCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Print saved entries as JSON",
		Long:  `Prints the saved texts file. --recent limits the output to the newest n entries, newest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			st := store.New(cfg.StorePath, log)

			var entries []store.Entry
			if recent > 0 {
				entries = st.Recent(recent)
			} else {
				entries, err = st.Read()
				if err != nil {
					return err
				}
			}

			data, err := store.Encode(entries)
			if err != nil {
				return fmt.Errorf("encode entries: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Only the newest n entries")
	return cmd
}
