package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/osse101/FNTDWorld_Go/internal/catalog"
	"github.com/osse101/FNTDWorld_Go/internal/config"
	"github.com/osse101/FNTDWorld_Go/internal/validation"
	"github.com/osse101/FNTDWorld_Go/migrations"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose the local setup (tools, config, catalog, database, migrations)"
}

// doctorCheck is one line of the doctor report. Checks naming a dependency
// are skipped once that dependency has failed.
type doctorCheck struct {
	name  string
	needs string
	run   func() (string, error)
}

type checkStatus int

const (
	statusOK checkStatus = iota
	statusFailed
	statusSkipped
)

type checkResult struct {
	name   string
	status checkStatus
	detail string
}

var errDoctorFailed = errors.New("doctor found issues")

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")
	results := runChecks(defaultChecks())
	printReport(results)
	for _, r := range results {
		if r.status != statusOK {
			return errDoctorFailed
		}
	}
	PrintSuccess("All systems operational!")
	return nil
}

func defaultChecks() []doctorCheck {
	return []doctorCheck{
		{name: "tools", run: func() (string, error) {
			return "", (&CheckDepsCommand{}).Run(nil)
		}},
		{name: "config", run: func() (string, error) {
			cfg, err := config.Load()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("env=%s storage=%s", cfg.Environment, cfg.StorageDriver), nil
		}},
		{name: "catalog", run: func() (string, error) {
			cat, err := catalog.Load(getEnv("CATALOG_PATH", ""), validation.NewSchemaValidator())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d outcomes, %d items", len(cat.Outcomes()), len(cat.Items())), nil
		}},
		// one attempt so a stopped database fails fast
		{name: "database", run: func() (string, error) {
			return "", pingDB(dbURL())
		}},
		{name: "migrations", needs: "database", run: pendingMigrations},
	}
}

func runChecks(checks []doctorCheck) []checkResult {
	failed := make(map[string]bool)
	results := make([]checkResult, 0, len(checks))
	for _, c := range checks {
		if c.needs != "" && failed[c.needs] {
			failed[c.name] = true
			results = append(results, checkResult{name: c.name, status: statusSkipped, detail: c.needs + " unavailable"})
			continue
		}
		detail, err := c.run()
		if err != nil {
			failed[c.name] = true
			results = append(results, checkResult{name: c.name, status: statusFailed, detail: err.Error()})
			continue
		}
		results = append(results, checkResult{name: c.name, status: statusOK, detail: detail})
	}
	return results
}

func printReport(results []checkResult) {
	for _, r := range results {
		switch r.status {
		case statusOK:
			PrintSuccess("%-11s ok %s", r.name, r.detail)
		case statusSkipped:
			PrintWarning("%-11s skipped (%s)", r.name, r.detail)
		default:
			PrintError("%-11s %s", r.name, r.detail)
		}
	}
}

// pendingMigrations fails when the database is behind the embedded migrations
func pendingMigrations() (string, error) {
	db, err := sql.Open("pgx", dbURL())
	if err != nil {
		return "", err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return "", err
	}
	current, err := goose.GetDBVersion(db)
	if err != nil {
		return "", err
	}
	all, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return "", err
	}
	latest, err := all.Last()
	if err != nil {
		return "", err
	}
	if current < latest.Version {
		return "", fmt.Errorf("database at version %d, latest is %d; run devtool migrate up", current, latest.Version)
	}
	return fmt.Sprintf("version %d", current), nil
}
