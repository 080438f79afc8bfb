package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(configDir *string) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show or delete previously run alias invocations",
	}

	historyCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded invocations, oldest first",
		RunE: func(c *cobra.Command, args []string) error {
			hist, err := openHistory(*configDir)
			if err != nil {
				return err
			}
			entries, err := hist.Entries()
			if err != nil {
				return err
			}
			for i, e := range entries {
				fmt.Printf("%d\t%s\t%s\n", i, e.Alias, e.Command)
			}
			return nil
		},
	})

	historyCmd.AddCommand(&cobra.Command{
		Use:   "last",
		Short: "Show the most recently run invocation",
		RunE: func(c *cobra.Command, args []string) error {
			hist, err := openHistory(*configDir)
			if err != nil {
				return err
			}
			entry, ok, err := hist.Last()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("sam: history is empty")
			}
			fmt.Printf("%s\t%s\n", entry.Alias, entry.Command)
			return nil
		},
	})

	var deletePosition int
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a recorded invocation by its position from \"history list\"",
		RunE: func(c *cobra.Command, args []string) error {
			hist, err := openHistory(*configDir)
			if err != nil {
				return err
			}
			return hist.Delete(deletePosition)
		},
	}
	deleteCmd.Flags().IntVar(&deletePosition, "position", -1, "position to delete, as shown by \"history list\"")
	historyCmd.AddCommand(deleteCmd)

	return historyCmd
}
