package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/jwtui/internal/config"
	"github.com/zhubert/jwtui/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return listThemes(cmd.OutOrStdout(), cfg.GetTheme())
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// listThemes prints one theme per line, marking current with an asterisk.
func listThemes(w io.Writer, current string) error {
	for _, name := range ui.ThemeNames() {
		marker := " "
		if string(name) == current {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", marker, name, ui.GetTheme(name).Name); err != nil {
			return err
		}
	}
	return nil
}
