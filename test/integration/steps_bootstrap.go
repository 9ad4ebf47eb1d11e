package integration

import (
	"fmt"

	"github.com/cucumber/godog"

	"github.com/videoalert/videoalert/pkg/db/bootstrap"
)

func (s *StepsContext) registerBootstrapSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a schedule exists for "([^"]*)"$`, s.seedSchedule)
	sc.Step(`^the schema is bootstrapped again$`, s.schemaIsBootstrappedAgain)
	sc.Step(`^every expected table is present$`, s.everyExpectedTableIsPresent)
	sc.Step(`^the "([^"]*)" table has (\d+) rows?$`, s.tableHasRows)
}

func (s *StepsContext) schemaIsBootstrappedAgain() error {
	if s.instance == nil {
		return fmt.Errorf("no server is running")
	}

	report, err := bootstrap.EnsureSchema(s.instance.DB)
	if err != nil {
		return err
	}
	s.report = report
	return nil
}

func (s *StepsContext) everyExpectedTableIsPresent() error {
	if s.report == nil {
		return fmt.Errorf("no bootstrap report captured")
	}
	if !s.report.Ok() {
		return fmt.Errorf("missing tables: %v", s.report.Missing)
	}
	return nil
}

func (s *StepsContext) tableHasRows(table string, rows int) error {
	if s.report == nil {
		return fmt.Errorf("no bootstrap report captured")
	}
	for _, tc := range s.report.Tables {
		if tc.Name == table {
			if tc.Rows != int64(rows) {
				return fmt.Errorf("expected %d rows in %s, got %d", rows, table, tc.Rows)
			}
			return nil
		}
	}
	return fmt.Errorf("table %s not present in report", table)
}
