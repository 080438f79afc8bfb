package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known alias",
		RunE: func(c *cobra.Command, args []string) error {
			aliases, _, err := loadRepositories(*configDir)
			if err != nil {
				return err
			}
			ids := aliases.Identifiers()
			descs := aliases.Descriptions()
			for i, id := range ids {
				if descs[i] == "" {
					fmt.Println(id.String())
					continue
				}
				fmt.Printf("%s\t%s\n", id.String(), descs[i])
			}
			return nil
		},
	}
}
