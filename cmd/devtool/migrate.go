package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/osse101/FNTDWorld_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status, version, redo)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status, version, redo")
	}

	db, err := sql.Open("pgx", dbURL())
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("goose %s", args[0]))
	if err := goose.RunContext(context.Background(), args[0], db, ".", args[1:]...); err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	PrintSuccess("Migration command %q complete", args[0])
	return nil
}
