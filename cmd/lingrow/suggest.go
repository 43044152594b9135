package main

import (
	"fmt"
	"io"
	"strings"

	"lingrow/internal/services"
	"lingrow/internal/suggest"

	"github.com/spf13/cobra"
)

func NewSuggestCmd() *cobra.Command {
	var label, diff bool

	cmd := &cobra.Command{
		Use:   "suggest <professional|neutral|cultural> [text...]",
		Short: "Rewrite text with one of the canned suggestions",
		Long:  `Rewrites the given text, or stdin when no text is given, and prints the result.`,
		Args:  cobra.MinimumNArgs(1),
		ValidArgs: []string{
			"professional", "neutral", "cultural",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := suggest.ParseKind(args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if len(args) == 1 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}

			output, err := suggest.Apply(kind, text)
			if err != nil {
				return err
			}
			if label {
				output = services.FormatPreview(kind, output)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, output)
			if diff {
				for _, c := range suggest.Diff(text, output) {
					switch c.Type {
					case suggest.Insert:
						fmt.Fprintf(out, "+ %q\n", c.Text)
					case suggest.Delete:
						fmt.Fprintf(out, "- %q\n", c.Text)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&label, "label", false, "Prefix the output with the preview header")
	cmd.Flags().BoolVar(&diff, "diff", false, "List inserted and deleted runs after the output")
	return cmd
}
