package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitstat/internal/config"
	"github.com/raphi011/gitstat/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage gitstat configuration.

Config location: ~/.config/gitstat/config.toml`,
		Example: `  gitstat config init      # Create default config
  gitstat config init -f   # Overwrite existing config
  gitstat config show      # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gitstat config init      # Create config if missing
  gitstat config init -f   # Overwrite existing config
  gitstat config init -s   # Print default config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(defaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(defaultConfig()), 0644); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration: file values merged with defaults
and the GITSTAT_HASH_PREFIX environment override.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			return toml.NewEncoder(out.Writer()).Encode(*cfg)
		},
	}

	return cmd
}

// defaultConfig returns the default configuration content.
func defaultConfig() string {
	return `# gitstat configuration
# Config location: ~/.config/gitstat/config.toml

# Prefix rendered before the commit hash in prompt mode when HEAD is
# detached. Overridden by the GITSTAT_HASH_PREFIX environment variable.
# hash_prefix = ":"

# Symbols used by 'gitstat prompt'. The machine-readable line is not
# affected by any of these.
[prompt]
# ahead_symbol = "↑"
# behind_symbol = "↓"
# staged_symbol = "●"
# conflict_symbol = "✖"
# changed_symbol = "✚"
# untracked_symbol = "…"
# stash_symbol = "⚑"
# clean_symbol = "✔"
`
}
