package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/videoalert/videoalert/pkg/config"
	"github.com/videoalert/videoalert/pkg/db/bootstrap"
	"github.com/videoalert/videoalert/pkg/model"
)

// StepsContext carries the state of a single scenario: the settings under
// test, the running server and the last HTTP exchange.
type StepsContext struct {
	tc       *TestContext
	settings *config.Settings
	instance *ServerInstance
	report   *bootstrap.Report

	lastStatus int
	lastBody   []byte
	lastHeader http.Header
}

// NewStepsContext creates a steps context bound to the shared test context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:       tc,
		settings: &config.Settings{},
	}
}

// RegisterSteps registers all step definitions with godog
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^no settings are configured$`, s.noSettingsAreConfigured)
	sc.Step(`^the monitored URL is "([^"]*)"$`, s.theMonitoredURLIs)
	sc.Step(`^the notification channel id is "([^"]*)"$`, s.theNotificationChannelIDIs)
	sc.Step(`^the notification credential is "([^"]*)"$`, s.theNotificationCredentialIs)
	sc.Step(`^the admin token is "([^"]*)"$`, s.theAdminTokenIs)
	sc.Step(`^the server is running$`, s.theServerIsRunning)
	sc.Step(`^the response status is (\d+)$`, s.theResponseStatusIs)
	sc.Step(`^the response body does not contain "([^"]*)"$`, s.theResponseBodyDoesNotContain)

	s.registerAdminSteps(sc)
	s.registerBootstrapSteps(sc)

	sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
		if s.instance != nil {
			s.instance.Stop()
			s.instance = nil
		}
		s.settings = &config.Settings{}
		s.report = nil
		return ctx, nil
	})
}

func (s *StepsContext) noSettingsAreConfigured() error {
	s.settings = &config.Settings{}
	return nil
}

func (s *StepsContext) theMonitoredURLIs(value string) error {
	s.settings.MonitoredURL = value
	return nil
}

func (s *StepsContext) theNotificationChannelIDIs(value string) error {
	s.settings.TelegramChannelID = value
	return nil
}

func (s *StepsContext) theNotificationCredentialIs(value string) error {
	s.settings.TelegramBotToken = value
	return nil
}

func (s *StepsContext) theAdminTokenIs(value string) error {
	s.settings.AdminToken = value
	return nil
}

func (s *StepsContext) theServerIsRunning() error {
	instance, err := StartServer(s.tc, s.settings)
	if err != nil {
		return err
	}
	s.instance = instance
	return nil
}

func (s *StepsContext) theResponseStatusIs(status int) error {
	if s.lastStatus != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.lastStatus, s.lastBody)
	}
	return nil
}

func (s *StepsContext) theResponseBodyDoesNotContain(needle string) error {
	if strings.Contains(string(s.lastBody), needle) {
		return fmt.Errorf("response body unexpectedly contains %q", needle)
	}
	return nil
}

func (s *StepsContext) get(path string, headers map[string]string) error {
	if s.instance == nil {
		return fmt.Errorf("no server is running")
	}

	req, err := http.NewRequest("GET", s.instance.ServerURL+path, nil)
	if err != nil {
		return err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	s.lastStatus = resp.StatusCode
	s.lastBody = body
	s.lastHeader = resp.Header
	return nil
}

// seedSchedule inserts a schedule row directly, bypassing the API.
func (s *StepsContext) seedSchedule(url string) error {
	if s.instance == nil {
		return fmt.Errorf("no server is running")
	}
	return s.instance.DB.Create(&model.CrawlSchedule{
		URL:      url,
		Interval: 300,
		IsActive: true,
	}).Error
}
