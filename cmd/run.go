package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/sam/pkg/launch"
	"github.com/mattsolo1/sam/pkg/sam"
)

func newRunCmd(configDir *string) *cobra.Command {
	var noShell bool
	var dryRun bool

	runCmd := &cobra.Command{
		Use:   "run [identifier]",
		Short: "Resolve and run an alias",
		Long: `Resolves every variable the named alias needs, substitutes the result
into its command, and runs it. With no identifier, prompts interactively
among every known alias.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			aliases, vars, err := loadRepositories(*configDir)
			if err != nil {
				return err
			}

			resolver := newInteractiveResolver()
			planner := sam.NewPlanner(aliases, vars, resolver)

			id, err := pickAlias(aliases, resolver, args)
			if err != nil {
				return err
			}

			result, err := planner.Execute(id)
			if err != nil {
				return fmt.Errorf("sam: resolving %s: %w", id, err)
			}

			if dryRun {
				fmt.Println(result.Command)
				return nil
			}

			hist, err := openHistory(*configDir)
			if err != nil {
				log.WithError(err).Warn("sam: could not open history store")
			} else if err := hist.Push(HistoryEntry{Alias: id.String(), Command: result.Command}); err != nil {
				log.WithError(err).Warn("sam: could not record history entry")
			}

			log.WithField("alias", id.String()).Debug("running resolved command")
			return launch.Run(context.Background(), result, launch.Options{NoShell: noShell})
		},
	}

	runCmd.Flags().BoolVar(&noShell, "no-shell", false, "exec the resolved command directly instead of through the current shell")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved command instead of running it")

	return runCmd
}

// pickAlias returns the alias named by args[0] if present, otherwise asks
// the resolver to choose among every known alias.
func pickAlias(aliases *sam.AliasCollection, resolver sam.Resolver, args []string) (sam.Identifier, error) {
	if len(args) == 1 {
		return sam.ParseIdentifier(args[0])
	}
	ids := aliases.Identifiers()
	if len(ids) == 0 {
		return sam.Identifier{}, fmt.Errorf("sam: no aliases are defined")
	}
	return resolver.SelectIdentifier(ids, aliases.Descriptions(), "choose an alias")
}
