package bootstrap

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/videoalert/videoalert/pkg/model"
)

//go:embed schema.sql
var schemaSQL string

// TableCount pairs a present table with its live row count.
type TableCount struct {
	Name string
	Rows int64
}

// Report is the outcome of a bootstrap or inspection run: every user table
// present in the store with its row count, plus any expected table that is
// still absent.
type Report struct {
	Tables  []TableCount
	Missing []string
}

// Ok reports whether the store holds every expected table.
func (r *Report) Ok() bool {
	return len(r.Missing) == 0
}

// EnsureSchema creates the entity tables and their indexes if absent, then
// inspects the store. The structural statements run as a single transaction:
// the first failure rolls the unit back and surfaces the store's error.
func EnsureSchema(gdb *gorm.DB) (*Report, error) {
	stmts := statements(schemaSQL)

	err := gdb.Transaction(func(tx *gorm.DB) error {
		for i, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("schema statement %d/%d failed: %w", i+1, len(stmts), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Inspect(gdb)
}

// Inspect enumerates the user tables actually present, counts their rows and
// cross-references the expected set from pkg/model. It performs no writes.
func Inspect(gdb *gorm.DB) (*Report, error) {
	tables, err := gdb.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate tables: %w", err)
	}
	sort.Strings(tables)

	report := &Report{}
	present := make(map[string]bool, len(tables))
	for _, name := range tables {
		// sqlite keeps internal bookkeeping tables alongside user ones.
		if strings.HasPrefix(name, "sqlite_") {
			continue
		}
		present[name] = true

		var rows int64
		if err := gdb.Table(name).Count(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", name, err)
		}
		report.Tables = append(report.Tables, TableCount{Name: name, Rows: rows})
	}

	for _, name := range model.Tables() {
		if !present[name] {
			report.Missing = append(report.Missing, name)
		}
	}
	sort.Strings(report.Missing)

	return report, nil
}

// statements splits the embedded schema into executable statements, dropping
// comment lines.
func statements(sql string) []string {
	var lines []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, chunk := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt := strings.TrimSpace(chunk); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
