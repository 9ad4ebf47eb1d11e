package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/videoalert/videoalert/pkg/disclosure"
)

const (
	ProjectName = "Video Alert API"
	Version     = "1.0.0"

	DefaultConfigPath = "/etc/videoalert/config"
	ConfigFileName    = "videoalert.yml"

	DefaultDatabaseURL = "sqlite:///./dev.db"
	DefaultBindAddress = "0.0.0.0"
	DefaultPort        = 8000
)

// Settings holds all Video Alert configuration.
type Settings struct {
	// MonitoredURL is the page watched for newly published videos
	MonitoredURL string `yaml:"monitored_url" json:"monitored_url"`

	// TelegramChannelID is the channel notifications are delivered to
	TelegramChannelID string `yaml:"telegram_channel_id" json:"telegram_channel_id"`

	// TelegramBotToken is the credential used to deliver notifications
	TelegramBotToken string `yaml:"telegram_bot_token" json:"telegram_bot_token"`

	// AdminToken is the token expected on admin endpoints
	AdminToken string `yaml:"admin_token" json:"admin_token"`

	// DatabaseURL is the database connection URL
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// AllowedOrigins is the list of origins permitted by CORS.
	// Entries may be exact origins, "*", or wildcard patterns such
	// as https://*.example.app.
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`

	// BindAddress is the address the server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the port the server listens on
	Port int `yaml:"port" json:"port"`

	// LogLevel controls logging verbosity
	LogLevel string `yaml:"log_level" json:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns settings with default values
func newDefault() *Settings {
	return &Settings{
		DatabaseURL:    DefaultDatabaseURL,
		AllowedOrigins: []string{"http://localhost:3000"},
		BindAddress:    DefaultBindAddress,
		Port:           DefaultPort,
		LogLevel:       "info",
		sources:        make(map[string]string),
	}
}

// Load loads settings from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Settings, error) {
	settings := newDefault()

	for _, name := range attributeNames() {
		settings.sources[name] = "default"
	}

	configPath := os.Getenv("VIDEOALERT_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	settings.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(settings.configFilePath); err == nil {
		var fileSettings Settings
		if err := yaml.Unmarshal(data, &fileSettings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", settings.configFilePath, err)
		}
		settings.applyFileConfig(&fileSettings)
	}

	settings.applyEnvConfig()

	return settings, nil
}

func attributeNames() []string {
	return []string{
		"monitored_url", "telegram_channel_id", "telegram_bot_token",
		"admin_token", "database_url", "allowed_origins",
		"bind_address", "port", "log_level",
	}
}

func (s *Settings) applyFileConfig(file *Settings) {
	if file.MonitoredURL != "" {
		s.MonitoredURL = file.MonitoredURL
		s.sources["monitored_url"] = "file"
	}
	if file.TelegramChannelID != "" {
		s.TelegramChannelID = file.TelegramChannelID
		s.sources["telegram_channel_id"] = "file"
	}
	if file.TelegramBotToken != "" {
		s.TelegramBotToken = file.TelegramBotToken
		s.sources["telegram_bot_token"] = "file"
	}
	if file.AdminToken != "" {
		s.AdminToken = file.AdminToken
		s.sources["admin_token"] = "file"
	}
	if file.DatabaseURL != "" {
		s.DatabaseURL = file.DatabaseURL
		s.sources["database_url"] = "file"
	}
	if len(file.AllowedOrigins) > 0 {
		s.AllowedOrigins = file.AllowedOrigins
		s.sources["allowed_origins"] = "file"
	}
	if file.BindAddress != "" {
		s.BindAddress = file.BindAddress
		s.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		s.Port = file.Port
		s.sources["port"] = "file"
	}
	if file.LogLevel != "" {
		s.LogLevel = file.LogLevel
		s.sources["log_level"] = "file"
	}
}

func (s *Settings) applyEnvConfig() {
	if val := os.Getenv("MONITORED_URL"); val != "" {
		s.MonitoredURL = val
		s.sources["monitored_url"] = "environment"
	}
	if val := os.Getenv("TELEGRAM_CHANNEL_ID"); val != "" {
		s.TelegramChannelID = val
		s.sources["telegram_channel_id"] = "environment"
	}
	if val := os.Getenv("TELEGRAM_BOT_TOKEN"); val != "" {
		s.TelegramBotToken = val
		s.sources["telegram_bot_token"] = "environment"
	}
	if val := os.Getenv("ADMIN_TOKEN"); val != "" {
		s.AdminToken = val
		s.sources["admin_token"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		s.DatabaseURL = val
		s.sources["database_url"] = "environment"
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		s.AllowedOrigins = splitAndTrim(val)
		s.sources["allowed_origins"] = "environment"
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		s.BindAddress = val
		s.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			s.Port = i
			s.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("VIDEOALERT_LOG_LEVEL"); val != "" {
		s.LogLevel = val
		s.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (s *Settings) ConfigFilePath() string {
	return s.configFilePath
}

// Source returns the source of a configuration attribute
func (s *Settings) Source(name string) string {
	if s.sources == nil {
		return "default"
	}
	if src, ok := s.sources[name]; ok {
		return src
	}
	return "default"
}

// Lookup exposes the admin-visible settings by their canonical names. The
// raw value flows through untouched so callers decide how to present it.
func (s *Settings) Lookup(name string) (string, bool) {
	var value string
	switch name {
	case "MONITORED_URL":
		value = s.MonitoredURL
	case "TELEGRAM_CHANNEL_ID":
		value = s.TelegramChannelID
	case "TELEGRAM_BOT_TOKEN":
		value = s.TelegramBotToken
	case "ADMIN_TOKEN":
		value = s.AdminToken
	case "DATABASE_URL":
		value = s.DatabaseURL
	default:
		return "", false
	}
	return value, value != ""
}

// ListenAddress returns the address:port the server should bind to
func (s *Settings) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.BindAddress, s.Port)
}

// Validate validates the settings
func (s *Settings) Validate() error {
	if s.MonitoredURL != "" {
		u, err := url.Parse(s.MonitoredURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid monitored_url: %s", s.MonitoredURL)
		}
	}

	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.Port)
	}

	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed_origins value: %s", origin)
		}
	}

	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. Secret values are masked.
func (s *Settings) Attributes() []Attribute {
	return []Attribute{
		{Name: "monitored_url", Value: s.MonitoredURL, Source: s.Source("monitored_url")},
		{Name: "telegram_channel_id", Value: s.TelegramChannelID, Source: s.Source("telegram_channel_id")},
		{Name: "telegram_bot_token", Value: s.maskedValue("TELEGRAM_BOT_TOKEN"), Source: s.Source("telegram_bot_token")},
		{Name: "admin_token", Value: s.maskedValue("ADMIN_TOKEN"), Source: s.Source("admin_token")},
		{Name: "database_url", Value: s.DatabaseURL, Source: s.Source("database_url")},
		{Name: "allowed_origins", Value: strings.Join(s.AllowedOrigins, ","), Source: s.Source("allowed_origins")},
		{Name: "bind_address", Value: s.BindAddress, Source: s.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(s.Port), Source: s.Source("port")},
		{Name: "log_level", Value: s.LogLevel, Source: s.Source("log_level")},
	}
}

// maskedValue renders a secret attribute for display without its raw value.
func (s *Settings) maskedValue(name string) string {
	record := disclosure.Disclose(s, name, disclosure.Secret)
	if !record.IsSet {
		return ""
	}
	return "****"
}

// FormatText returns a text representation of the settings
func (s *Settings) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", s.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range s.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the settings
func (s *Settings) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": s.configFilePath,
		"attributes":  s.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
