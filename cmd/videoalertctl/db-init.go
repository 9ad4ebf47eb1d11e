package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/db"
	"github.com/videoalert/videoalert/pkg/db/bootstrap"
)

// dbInitCmd represents the db init command
var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema if it is missing",
	Long: `Create the database schema if it is missing.

Every statement is guarded, so running this command against a live
database is safe: existing tables and their rows are left untouched.
The command prints the table inventory with row counts before and
after the run.

Example:
  videoalertctl db init`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(); err != nil {
			fmt.Fprintf(os.Stderr, "Initialization failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
}

func runInit() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Database: %s\n", settings.DatabaseURL)

	if path, err := db.SQLitePath(settings.DatabaseURL); err == nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			fmt.Printf("Creating new sqlite database at %s\n", path)
		} else {
			fmt.Printf("Using existing sqlite database at %s\n", path)
		}
	}

	gdb, err := db.Connect(db.Config{URL: settings.DatabaseURL})
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	before, err := bootstrap.Inspect(gdb)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Before:")
	printReport(before)

	after, err := bootstrap.EnsureSchema(gdb)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("After:")
	printReport(after)

	if !after.Ok() {
		return fmt.Errorf("tables still missing after initialization: %v", after.Missing)
	}

	fmt.Println()
	fmt.Println("Database initialized")
	return nil
}

func printReport(report *bootstrap.Report) {
	if len(report.Tables) == 0 {
		fmt.Println("  (no tables)")
	}
	for _, table := range report.Tables {
		fmt.Printf("  %-25s %d rows\n", table.Name, table.Rows)
	}
	for _, name := range report.Missing {
		fmt.Printf("  %-25s missing\n", name)
	}
}
