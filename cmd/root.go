// Package cmd wires pkg/sam's core engine together with CLI argument
// parsing and config discovery, using cobra's NewXCmd()/RunE idiom.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/sam/pkg/history"
	"github.com/mattsolo1/sam/pkg/loader"
	"github.com/mattsolo1/sam/pkg/sam"
	"github.com/mattsolo1/sam/pkg/tui"
)

// defaultConfigDir resolves the config directory: $SAM_CONFIG_DIR if set,
// else "$HOME/.config/sam".
func defaultConfigDir() string {
	if dir := os.Getenv("SAM_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sam"
	}
	return filepath.Join(home, ".config", "sam")
}

func defaultHistoryPath(configDir string) string {
	return filepath.Join(configDir, "history.yml")
}

// NewRootCmd builds sam's root command and wires every subcommand.
func NewRootCmd() *cobra.Command {
	var configDir string
	var verbose bool

	root := &cobra.Command{
		Use:   "sam",
		Short: "Compose and run shell aliases with interactively resolved variables",
		Long: `sam reads alias and variable definitions from a config directory,
composes aliases that reference one another, resolves every variable an
alias needs (from a static list, a dynamic shell command, or free-form
input), substitutes the result into the alias's command, and runs it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", defaultConfigDir(), "directory containing alias and variable YAML files")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(&configDir))
	root.AddCommand(newListCmd(&configDir))
	root.AddCommand(newHistoryCmd(&configDir))

	return root
}

// loadRepositories loads the alias and variable registries from configDir,
// wrapping load failures with enough context to act on.
func loadRepositories(configDir string) (*sam.AliasCollection, *sam.VarsRepository, error) {
	if _, err := os.Stat(configDir); err != nil {
		return nil, nil, fmt.Errorf("sam: config directory %s: %w", configDir, err)
	}
	aliases, vars, err := loader.Dir(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("sam: loading %s: %w", configDir, err)
	}
	return aliases, vars, nil
}

func openHistory(configDir string) (*history.Store[HistoryEntry], error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("sam: creating config directory %s: %w", configDir, err)
	}
	return history.New[HistoryEntry](defaultHistoryPath(configDir), 200)
}

// HistoryEntry records one executed alias invocation.
type HistoryEntry struct {
	Alias   string `yaml:"alias"`
	Command string `yaml:"command"`
}

func newInteractiveResolver() sam.Resolver {
	return tui.New()
}
