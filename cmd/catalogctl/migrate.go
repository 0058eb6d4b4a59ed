package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"media-catalog-api/internal/database"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.connect()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.SafeAutoMigrate(db, c.logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed")
			return nil
		},
	}
}
