package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bikepacking-api/internal/infra/db"
	"bikepacking-api/internal/pkg/config"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL()
			if err != nil {
				return err
			}
			if err := db.RunMigrations(dsn); err != nil {
				return err
			}
			return printVersion(cmd, dsn)
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (all of them unless -n is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL()
			if err != nil {
				return err
			}
			if err := db.RollbackMigrations(dsn, steps); err != nil {
				return err
			}
			return printVersion(cmd, dsn)
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 0, "number of migrations to roll back")
	cmd.AddCommand(down)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsn, err := databaseURL()
			if err != nil {
				return err
			}
			return printVersion(cmd, dsn)
		},
	})

	return cmd
}

// databaseURL reads only the DB settings so migrations run without the server's secrets.
func databaseURL() (string, error) {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return "", err
	}
	return cfg.BuildDSN(), nil
}

func printVersion(cmd *cobra.Command, dsn string) error {
	version, dirty, err := db.SchemaVersion(dsn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (required %d, dirty=%t)\n", version, db.RequiredSchemaVersion, dirty)
	return nil
}
