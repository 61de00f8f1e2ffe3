package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/montrey/workspaces/search"
	"github.com/montrey/workspaces/store"
)

var scanDryRun bool

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Bookmark every git repository under a directory",
	Long: `Walk a directory tree and add each git repository found, named after
its directory. Hidden directories, node_modules, vendor and anything ignored by
the root .gitignore are skipped. Names already taken are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repos, err := search.FindRepos(args[0])
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", args[0], err)
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		added := 0
		for _, repo := range repos {
			name := filepath.Base(repo)
			if scanDryRun {
				PrintInfo(out, fmt.Sprintf("Would add: %s (%s)", name, repo))
				continue
			}
			err := store.AddWorkspace(a.db, name, repo)
			switch {
			case err == nil:
				added++
				PrintSuccess(out, fmt.Sprintf("Workspace added: %s (%s)", name, repo))
			case errors.Is(err, store.ErrWorkspaceExists):
				PrintWarning(out, fmt.Sprintf("Skipped %s: name already taken", repo))
			case errors.Is(err, store.ErrInvalidName):
				PrintWarning(out, fmt.Sprintf("Skipped %s: %v", repo, err))
			default:
				return err
			}
		}
		if !scanDryRun {
			PrintInfo(out, fmt.Sprintf("Found %d repositories, added %d", len(repos), added))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "Only print what would be added")
}
