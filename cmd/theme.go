package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/jwtui/internal/config"
	"github.com/zhubert/jwtui/internal/errors"
	"github.com/zhubert/jwtui/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme [name]",
	Short: "Choose the color theme",
	Long: `Sets the color theme saved in the config file. With a name the theme is
set directly; without one an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	selected := cfg.GetTheme()
	if len(args) == 1 {
		selected = args[0]
	} else {
		ui.SetThemeByName(selected)
		if err := ui.NewThemePicker(&selected).Run(); err != nil {
			return err
		}
	}

	return saveTheme(cmd.OutOrStdout(), cfg, selected)
}

// saveTheme validates name and writes it to the config file.
func saveTheme(w io.Writer, cfg *config.Config, name string) error {
	if !ui.IsTheme(name) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", name))
	}
	cfg.SetTheme(name)
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Theme set to %s.\n", ui.GetTheme(ui.ThemeName(name)).Name)
	return nil
}
