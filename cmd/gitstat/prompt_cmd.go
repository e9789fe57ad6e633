package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitstat/internal/output"
	"github.com/raphi011/gitstat/internal/prompt"
)

func newPromptCmd() *cobra.Command {
	var (
		noColor    bool
		forceColor bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render a human-readable prompt segment",
		Args:  cobra.NoArgs,
		Long: `Render a decorated one-line prompt segment instead of the machine line.

Reads the same input as the bare command (piped porcelain report or git
itself) and prints something like (main↑2|●1✚1…3). Colors are enabled
when stdout is a terminal; prompts that capture output should pass
--color since the capture is not a TTY.`,
		Example: `  gitstat prompt               # Colored segment on a terminal
  gitstat prompt --color       # Force colors when output is captured
  git status --branch --porcelain | gitstat prompt --no-color`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := collectSummary(ctx)
			if errors.Is(err, errNotRepo) {
				return nil
			}
			if err != nil {
				return err
			}

			color := forceColor || (!noColor && isatty.IsTerminal(os.Stdout.Fd()))
			output.FromContext(ctx).Println(prompt.Render(s, *cfg, color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	cmd.Flags().BoolVar(&forceColor, "color", false, "Force ANSI colors even when stdout is not a TTY")
	cmd.MarkFlagsMutuallyExclusive("color", "no-color")

	return cmd
}
