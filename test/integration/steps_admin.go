package integration

import (
	"encoding/json"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/videoalert/videoalert/pkg/disclosure"
	"github.com/videoalert/videoalert/pkg/server"
)

func (s *StepsContext) registerAdminSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I request the system variables with admin token "([^"]*)"$`, s.requestSystemVariablesWithToken)
	sc.Step(`^I request the system variables without an admin token$`, s.requestSystemVariablesWithoutToken)
	sc.Step(`^the "([^"]*)" record has value "([^"]*)"$`, s.recordHasValue)
	sc.Step(`^the "([^"]*)" record is not set$`, s.recordIsNotSet)
	sc.Step(`^the "([^"]*)" record is withheld$`, s.recordIsWithheld)
}

func (s *StepsContext) requestSystemVariablesWithToken(token string) error {
	return s.get("/api/v1/admin/system-variables", map[string]string{
		server.AdminTokenHeader: token,
	})
}

func (s *StepsContext) requestSystemVariablesWithoutToken() error {
	return s.get("/api/v1/admin/system-variables", nil)
}

func (s *StepsContext) record(key string) (disclosure.Record, error) {
	var response map[string]disclosure.Record
	if err := json.Unmarshal(s.lastBody, &response); err != nil {
		return disclosure.Record{}, fmt.Errorf("failed to parse response: %w (body: %s)", err, s.lastBody)
	}

	record, ok := response[key]
	if !ok {
		return disclosure.Record{}, fmt.Errorf("response has no %q record (body: %s)", key, s.lastBody)
	}
	return record, nil
}

func (s *StepsContext) recordHasValue(key, value string) error {
	record, err := s.record(key)
	if err != nil {
		return err
	}
	if !record.IsSet {
		return fmt.Errorf("%s is not set", key)
	}
	if record.Value == nil || *record.Value != value {
		return fmt.Errorf("expected %s value %q, got %v", key, value, record.Value)
	}
	if record.Hint != disclosure.HintConfigured {
		return fmt.Errorf("expected configured hint on %s, got %q", key, record.Hint)
	}
	return nil
}

func (s *StepsContext) recordIsNotSet(key string) error {
	record, err := s.record(key)
	if err != nil {
		return err
	}
	if record.IsSet || record.Value != nil {
		return fmt.Errorf("expected %s to be unset, got %+v", key, record)
	}
	if record.Hint != disclosure.HintNotSet {
		return fmt.Errorf("expected not-set hint on %s, got %q", key, record.Hint)
	}
	return nil
}

func (s *StepsContext) recordIsWithheld(key string) error {
	record, err := s.record(key)
	if err != nil {
		return err
	}
	if !record.IsSet {
		return fmt.Errorf("expected %s to be set, got %+v", key, record)
	}
	if record.Value != nil {
		return fmt.Errorf("expected %s value to be withheld, got %q", key, *record.Value)
	}
	if record.Hint != disclosure.HintWithheld {
		return fmt.Errorf("expected withheld hint on %s, got %q", key, record.Hint)
	}
	return nil
}
