package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/montrey/workspaces/store"
)

var listVerbose bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bookmarked workspaces",
	Args:    cobra.NoArgs,
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
		out := cmd.OutOrStdout()
		if len(workspaces) == 0 {
			PrintInfo(out, "No workspaces found.")
			return nil
		}

		visits := make(map[string]int)
		if listVerbose {
			history, err := store.GetHistory(a.db)
			if err != nil {
				return err
			}
			for _, h := range history {
				visits[h.Name] = h.Frequency
			}
		}

		width := 0
		for _, ws := range workspaces {
			width = max(width, runewidth.StringWidth(ws.Name))
		}
		width += 2

		for _, ws := range workspaces {
			dots := strings.Repeat(".", width-runewidth.StringWidth(ws.Name))
			line := labelColor.Sprint(ws.Name) + dimColor.Sprint(dots) + ws.Path
			if listVerbose {
				line += dimColor.Sprintf("  (%d visits)", visits[ws.Name])
			}
			_, _ = fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Show visit counts")
}
