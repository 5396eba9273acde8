package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/jwtui/internal/app"
	"github.com/zhubert/jwtui/internal/clipboard"
	"github.com/zhubert/jwtui/internal/config"
	"github.com/zhubert/jwtui/internal/errors"
	"github.com/zhubert/jwtui/internal/logger"
	"github.com/zhubert/jwtui/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	noHighlight           bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "jwtui",
	Short: "Edit the parts of a JSON Web Token in the terminal",
	Long: `jwtui is a terminal editor for composing JSON Web Tokens.
The screen holds four text fields: the encoded token, its header, its payload
and the signing key. Press e to edit, TAB to move between fields, ESC to stop
editing and q to quit.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Color theme for this run (see 'jwtui themes')")
	rootCmd.Flags().BoolVar(&noHighlight, "no-highlight", false, "Disable JSON highlighting in the header and payload panels")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("jwtui %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("jwtui %s\n", version)
}

// loadConfig reads the config file and applies command-line overrides.
// Overrides last for this run only and are never saved.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if themeFlag != "" {
		if !ui.IsTheme(themeFlag) {
			return nil, errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", themeFlag))
		}
		cfg.SetTheme(themeFlag)
	}
	if noHighlight {
		cfg.SetHighlight(false)
	}
	return cfg, nil
}

// systemClipboard returns the platform clipboard, or nil when it cannot be
// used (no display, cgo disabled). Copying then relies on the terminal.
func systemClipboard() clipboard.Clipboard {
	clip := clipboard.NewSystem()
	if err := clip.Init(); err != nil {
		logger.Warn("System clipboard unavailable: %v", err)
		return nil
	}
	return clip
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.Info("jwtui %s starting", version)
	logger.Debug("Config %s, log %s", cfg.FilePath(), logger.Path())

	m := app.New(cfg, systemClipboard())
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("Program exited with error: %v", err)
		return errors.TerminalFailed(err)
	}
	logger.Info("jwtui exited")
	return nil
}
