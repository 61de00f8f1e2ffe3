package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/montrey/workspaces/store"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a plain-text name,path workspace list",
	Long: `Import workspaces from a text file with one "name,path" per line.
Without a file the old workspaces-rs list in the config directory is read.
Names already present are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := legacyPath()
		if len(args) == 1 {
			path = args[0]
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := store.ImportLegacy(a.db, f)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		out := cmd.OutOrStdout()
		if len(res.Skipped) > 0 {
			PrintWarning(out, "Skipped existing: "+strings.Join(res.Skipped, ", "))
		}
		PrintSuccess(out, fmt.Sprintf("Imported %d workspaces from %s", res.Added, path))
		return nil
	},
}

func legacyPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "workspaces-rs", "workspaces.txt")
}
