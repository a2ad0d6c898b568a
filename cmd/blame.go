package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gitscope/gitscope/internal/config"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/log"
	"github.com/gitscope/gitscope/internal/ui"
)

var blameRef string

var blameCmd = &cobra.Command{
	Use:   "blame <file>",
	Short: "Open the annotate view for a file",
	Long: `Open the blame annotate view for a single file: each line gets a
heatmap swatch colored by revision age, author, or author activity.

Cycle heatmap modes with 'm' inside the viewer.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlame,
}

func init() {
	blameCmd.Flags().StringVar(&blameRef, "ref", "",
		"blame at this ref instead of the working tree")
	rootCmd.AddCommand(blameCmd)
}

func runBlame(cmd *cobra.Command, args []string) error {
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

	model := ui.NewAnnotate(cfg, executor, blameRef, args[0])
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
