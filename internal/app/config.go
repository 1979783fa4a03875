package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // DATE_TIMEZONE must resolve without a system zoneinfo

	"yt_view_stats/internal/processing"

	"gopkg.in/yaml.v3"
)

var ErrMissingConfig = errors.New("missing required configuration")

type Config struct {
	SpreadsheetID    string        `yaml:"spreadsheet_id"`
	InputSheetName   string        `yaml:"input_sheet_name"`
	OutputSheetName  string        `yaml:"output_sheet_name"`
	CredentialsFile  string        `yaml:"credentials_file"`
	YouTubeAPIKey    string        `yaml:"youtube_api_key"`
	FetchFailureMode string        `yaml:"fetch_failure_mode"`
	DateTimezone     string        `yaml:"date_timezone"`
	Notifications    Notifications `yaml:"notifications"`

	// Resolved by LoadConfig.
	FailureMode processing.FailureMode `yaml:"-"`
	Location    *time.Location         `yaml:"-"`
}

type Notifications struct {
	Enabled  bool   `yaml:"enabled"`
	URL      string `yaml:"url"`
	Topic    string `yaml:"topic"`
	Priority string `yaml:"priority"`
}

var defaultNotifications = Notifications{
	URL:   "https://ntfy.sh",
	Topic: "yt-view-stats",
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CONFIG_PATH, and then the environment, later sources winning.
func LoadConfig() (*Config, error) {
	const op = "app.LoadConfig"

	var cfg Config
	setDefaults(&cfg)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.FetchFailureMode = processing.FailAll.String()
	cfg.Notifications = defaultNotifications
}

func decodeFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.SpreadsheetID = GetEnvWithDefault("SPREADSHEET_ID", cfg.SpreadsheetID)
	cfg.InputSheetName = GetEnvWithDefault("INPUT_SHEET_NAME", cfg.InputSheetName)
	cfg.OutputSheetName = GetEnvWithDefault("OUTPUT_SHEET_NAME", cfg.OutputSheetName)
	cfg.CredentialsFile = GetEnvWithDefault("CREDENTIALS_FILE", cfg.CredentialsFile)
	cfg.YouTubeAPIKey = GetEnvWithDefault("YOUTUBE_API_KEY", cfg.YouTubeAPIKey)
	cfg.FetchFailureMode = GetEnvWithDefault("FETCH_FAILURE_MODE", cfg.FetchFailureMode)
	cfg.DateTimezone = GetEnvWithDefault("DATE_TIMEZONE", cfg.DateTimezone)

	if v := os.Getenv("NTFY_ENABLED"); v != "" {
		cfg.Notifications.Enabled = v == "true"
	}
	cfg.Notifications.URL = GetEnvWithDefault("NTFY_URL", cfg.Notifications.URL)
	cfg.Notifications.Topic = GetEnvWithDefault("NTFY_TOPIC", cfg.Notifications.Topic)
	cfg.Notifications.Priority = GetEnvWithDefault("NTFY_PRIORITY", cfg.Notifications.Priority)
}

func (cfg *Config) resolve() error {
	var missing []string
	for _, req := range []struct{ key, value string }{
		{"SPREADSHEET_ID", cfg.SpreadsheetID},
		{"INPUT_SHEET_NAME", cfg.InputSheetName},
		{"OUTPUT_SHEET_NAME", cfg.OutputSheetName},
	} {
		if req.value == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	mode, err := processing.ParseFailureMode(cfg.FetchFailureMode)
	if err != nil {
		return err
	}
	cfg.FailureMode = mode

	cfg.Location = time.Local
	if cfg.DateTimezone != "" {
		loc, err := time.LoadLocation(cfg.DateTimezone)
		if err != nil {
			return fmt.Errorf("invalid date timezone %q: %w", cfg.DateTimezone, err)
		}
		cfg.Location = loc
	}
	return nil
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
