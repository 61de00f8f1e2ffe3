package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var shellFuncName string

const posixInit = `%[1]s() {
    if [ $# -gt 0 ]; then
        %[2]q "$@"
        return
    fi
    %[2]q || return
    if [ -s %[3]q ]; then
        cd -- "$(cat %[3]q)"
    fi
}
`

const fishInit = `function %[1]s
    if test (count $argv) -gt 0
        %[2]q $argv
        return
    end
    %[2]q; or return
    if test -s %[3]q
        cd (cat %[3]q)
    end
end
`

var shellInitCmd = &cobra.Command{
	Use:       "shell-init <bash|zsh|fish>",
	Short:     "Print the shell function that changes directory after a pick",
	Long:      `Print a shell function to eval in your shell rc, for example: eval "$(workspaces shell-init bash)"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		bin, err := os.Executable()
		if err != nil {
			bin = "workspaces"
		}
		bin = filepath.Clean(bin)

		var tmpl string
		switch args[0] {
		case "bash", "zsh":
			tmpl = posixInit
		case "fish":
			tmpl = fishInit
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), tmpl, shellFuncName, bin, cfg.Paths.ResultFile)
		return err
	},
}

func init() {
	shellInitCmd.Flags().StringVar(&shellFuncName, "name", "w", "Name of the shell function")
}
