package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/montrey/workspaces/search"
	"github.com/montrey/workspaces/store"
	"github.com/montrey/workspaces/ui"
)

var printPath bool

// runPicker is swapped out in tests, which have no terminal.
var runPicker = ui.Run

func runPick(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := clearResult(a.cfg.Paths.ResultFile); err != nil {
		return err
	}

	workspaces, err := store.ListWorkspaces(a.db)
	if err != nil {
		return err
	}
	if len(workspaces) == 0 {
		PrintInfo(cmd.ErrOrStderr(), "No workspaces found.")
		return nil
	}

	session := ui.NewSession(toEntries(workspaces), ui.Options{
		ConfirmGuard: a.cfg.Picker.ConfirmGuard(),
		MaxDistance:  a.cfg.Picker.MaxDistance,
	})
	renderer := ui.NewRenderer(a.cfg.Picker.Prompt, a.cfg.Picker.HighlightColor)

	res, err := runPicker(cmd.Context(), a.cfg.Picker.Backend, session, renderer)
	if err != nil {
		return err
	}
	if !res.Selected {
		log.Printf("picker cancelled")
		return nil
	}
	return deliver(cmd, a, res.Name, res.Path)
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Jump to the best match for a query without the picker",
	Long: `Rank workspaces against the query exactly as the picker would and
take the top one. Words are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		workspaces, err := store.ListWorkspaces(a.db)
		if err != nil {
			return err
		}
		if err := clearResult(a.cfg.Paths.ResultFile); err != nil {
			return err
		}

		query := strings.Join(args, " ")
		ix := search.NewIndex(toEntries(workspaces), a.cfg.Picker.MaxDistance)
		order := ix.Order(query)
		if len(order) == 0 {
			return fmt.Errorf("no workspace matches %q", query)
		}
		best := ix.Entry(order[0])
		return deliver(cmd, a, best.Name, best.Path)
	},
}

func init() {
	findCmd.Flags().BoolVarP(&printPath, "print", "p", false, "Also print the chosen path to stdout")
}

// deliver hands the chosen path to the shell integration.
func deliver(cmd *cobra.Command, a *app, name, path string) error {
	if err := writeResult(a.cfg.Paths.ResultFile, path); err != nil {
		return err
	}
	if err := store.RecordVisit(a.db, name); err != nil {
		log.Printf("failed to record visit to %s: %v", name, err)
	}
	log.Printf("selected %s (%s)", name, path)
	if printPath {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func writeResult(resultFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(resultFile), 0755); err != nil {
		return fmt.Errorf("failed to create result directory: %w", err)
	}
	if err := os.WriteFile(resultFile, []byte(path), 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// clearResult removes a stale result so a cancelled pick leaves nothing for
// the shell to cd into.
func clearResult(resultFile string) error {
	err := os.Remove(resultFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear result file: %w", err)
	}
	return nil
}
