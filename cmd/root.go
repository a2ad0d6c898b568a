package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitscope/gitscope/internal/config"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/log"
	"github.com/gitscope/gitscope/internal/syntax"
	"github.com/gitscope/gitscope/internal/ui"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "gitscope [ref]",
	Short:   "A terminal viewer for git diffs and blame heatmaps",
	Long: `A terminal viewer for git diffs with syntax highlighting, intra-line
change emphasis, and a blame annotate view with age/author/activity heatmaps.

With no arguments it shows the working directory diff against HEAD.
Pass a ref (e.g. HEAD~3, main) to diff against it.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runViewer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gitscope/config.yaml)")
	rootCmd.Flags().String("view", "",
		"diff layout: unified or side-by-side")
	rootCmd.Flags().String("intra", "",
		"intra-line emphasis: off, chars, or words")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to the config directory")

	_ = viper.BindPFlag("ui.view", rootCmd.Flags().Lookup("view"))
	_ = viper.BindPFlag("ui.intra", rootCmd.Flags().Lookup("intra"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.view", defaults.UI.View)
	viper.SetDefault("ui.intra", defaults.UI.Intra)
	viper.SetDefault("ui.buffer_lines", defaults.UI.BufferLines)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("cache.render_entries", defaults.Cache.RenderEntries)
	viper.SetDefault("cache.render_bytes", defaults.Cache.RenderBytes)
	viper.SetDefault("cache.highlight_entries", defaults.Cache.HighlightEntries)
	viper.SetDefault("blame.mode", defaults.Blame.Mode)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.DefaultConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			defaultPath := filepath.Join(config.DefaultConfigDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runViewer(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		logPath := filepath.Join(config.DefaultConfigDir(), "debug.log")
		if cleanup, err := log.Init(logPath); err == nil {
			defer cleanup()
			log.SetEnabled(true)
		}
	}

	if err := loadRuleFiles(cfg.Syntax.RuleFiles); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	executor := git.NewRealExecutor(workDir)
	if !executor.IsGitRepo() {
		return fmt.Errorf("%s is not inside a git repository", workDir)
	}

	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}

	model := ui.New(cfg, executor, ref)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// loadRuleFiles merges user language rule tables over the built-ins.
func loadRuleFiles(paths []string) error {
	for _, path := range paths {
		if expanded, err := expandHome(path); err == nil {
			path = expanded
		}
		if err := syntax.LoadRulesFile(path); err != nil {
			return fmt.Errorf("loading rule file %s: %w", path, err)
		}
	}
	return nil
}

func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path, err
	}
	return filepath.Join(home, path[2:]), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
