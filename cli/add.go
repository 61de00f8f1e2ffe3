package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/montrey/workspaces/store"
)

var addCmd = &cobra.Command{
	Use:   "add <name> [path]",
	Short: "Bookmark a directory under a name",
	Long:  `Bookmark a directory. The path defaults to the current directory.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		path := "."
		if len(args) == 2 {
			path = args[1]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", abs, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", abs)
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := store.AddWorkspace(a.db, name, abs); err != nil {
			if errors.Is(err, store.ErrWorkspaceExists) {
				return fmt.Errorf("workspace %q already exists", name)
			}
			return err
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Workspace added: %s (%s)", name, abs))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Forget a bookmarked workspace",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := store.RemoveWorkspace(a.db, name); err != nil {
			if errors.Is(err, store.ErrWorkspaceNotFound) {
				return fmt.Errorf("workspace %q not found", name)
			}
			return err
		}
		PrintSuccess(cmd.OutOrStdout(), "Workspace removed: "+name)
		return nil
	},
}
