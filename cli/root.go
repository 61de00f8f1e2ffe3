package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	dbPath     string
	backend    string
)

// rootCmd runs the picker when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:     "workspaces",
	Version: "dev",
	Short:   "Bookmark directories and jump back to them",
	Long: `workspaces keeps a list of named directories and lets you jump to one
with an interactive fuzzy picker.

Run without arguments to open the picker. The chosen path is written to the
result file for the shell function printed by 'workspaces shell-init'.`,
	Args:          cobra.NoArgs,
	RunE:          runPick,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $WORKSPACES_CONFIG or <config dir>/workspaces/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Workspace database path")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Picker backend: bubbletea or tcell")
	rootCmd.Flags().BoolVarP(&printPath, "print", "p", false, "Also print the chosen path to stdout")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "jump",
		Title: "Jumping:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "manage",
		Title: "Managing Workspaces:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the workspaces CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	findCmd.GroupID = "jump"
	rootCmd.AddCommand(findCmd)

	addCmd.GroupID = "manage"
	removeCmd.GroupID = "manage"
	listCmd.GroupID = "manage"
	scanCmd.GroupID = "manage"
	importCmd.GroupID = "manage"
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(importCmd)

	shellInitCmd.GroupID = "cli-tooling"
	rootCmd.AddCommand(shellInitCmd)
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
