package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/slack-tui/internal/app"
	"github.com/atomicstack/slack-tui/internal/logging"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the JSON (with comments) config file.
type fileConfig struct {
	OAuthToken string `json:"oauth_token"`
	APIURL     string `json:"api_url"`
	Channel    string `json:"channel"`
	LogFile    string `json:"log_file"`
}

const (
	envConfig     = "SLACK_TUI_CONFIG"
	envToken      = "SLACK_TUI_TOKEN"
	envAPIURL     = "SLACK_TUI_API_URL"
	envChannel    = "SLACK_TUI_CHANNEL"
	envRefresh    = "SLACK_TUI_REFRESH"
	envTimeout    = "SLACK_TUI_TIMEOUT"
	envWidth      = "SLACK_TUI_WIDTH"
	envHeight     = "SLACK_TUI_HEIGHT"
	envShowFooter = "SLACK_TUI_FOOTER"
	envTrace      = "SLACK_TUI_TRACE"
	envLogFile    = "SLACK_TUI_LOG_FILE"
)

const defaultConfigPath = "config.json"

// ErrHelp is returned by LoadArgs when --help was requested.
var ErrHelp = pflag.ErrHelp

type flagValues struct {
	config  *string
	token   *string
	apiURL  *string
	channel *string
	refresh *time.Duration
	timeout *time.Duration
	width   *int
	height  *int
	footer  *bool
	trace   *bool
	logFile *string
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet("slack-tui", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	v := flagValues{
		config:  fs.String("config", envOrDefault(env, envConfig, defaultConfigPath), "path to the JSON config file"),
		token:   fs.String("token", envOrDefault(env, envToken, ""), "Slack OAuth token (overrides the config file)"),
		apiURL:  fs.String("api-url", envOrDefault(env, envAPIURL, ""), "Slack Web API base URL"),
		channel: fs.String("channel", envOrDefault(env, envChannel, ""), "channel to open at startup (fuzzy matched)"),
		refresh: fs.Duration("refresh", envOrDuration(env, envRefresh, app.DefaultRefresh), "channel/user list refresh interval (0 disables)"),
		timeout: fs.Duration("timeout", envOrDuration(env, envTimeout, app.DefaultRequestTimeout), "timeout for each Slack request"),
		width:   fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:  fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:  fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key hints"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
	return fs, v
}

// Usage returns the flag help text.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return "Usage: slack-tui [flags]\n\n" + fs.FlagUsages()
}

// Load parses configuration from CLI arguments, environment variables and
// the config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in the order flag, environment, config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *v.timeout < 0 {
		return Config{}, fmt.Errorf("timeout must be >= 0 (got %s)", *v.timeout)
	}
	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}
	if *v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *v.height)
	}

	_, configFromEnv := env[envConfig]
	explicit := fs.Changed("config") || configFromEnv
	file, err := readFile(*v.config, explicit)
	if err != nil {
		return Config{}, err
	}

	fromFile := func(name, envKey, current, fileValue string) string {
		if fs.Changed(name) {
			return current
		}
		if _, ok := env[envKey]; ok {
			return current
		}
		return fileValue
	}
	token := fromFile("token", envToken, *v.token, file.OAuthToken)
	apiURL := fromFile("api-url", envAPIURL, *v.apiURL, file.APIURL)
	channel := fromFile("channel", envChannel, *v.channel, file.Channel)
	logFile := fromFile("log-file", envLogFile, *v.logFile, file.LogFile)

	cfg := Config{
		App: app.Config{
			Token:          strings.TrimSpace(token),
			APIURL:         apiURL,
			Channel:        channel,
			Refresh:        *v.refresh,
			RequestTimeout: *v.timeout,
			Width:          *v.width,
			Height:         *v.height,
			ShowFooter:     *v.footer,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    *v.trace,
		},
		File: *v.config,
		Flags: map[string]string{
			"config":  *v.config,
			"token":   logging.Redact(token),
			"apiURL":  apiURL,
			"channel": channel,
			"refresh": v.refresh.String(),
			"timeout": v.timeout.String(),
			"width":   strconv.Itoa(*v.width),
			"height":  strconv.Itoa(*v.height),
			"footer":  strconv.FormatBool(*v.footer),
			"trace":   strconv.FormatBool(*v.trace),
			"logFile": logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile loads path. A missing file is only an error when the path was
// requested explicitly.
func readFile(path string, explicit bool) (fileConfig, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fc, nil
		}
		return fc, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return fc, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fc, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Token == "" {
		return fmt.Errorf("no Slack token: set oauth_token in %s, --token or %s", cfg.File, envToken)
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	if cfg.App.RequestTimeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.RequestTimeout)
	}
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("width and height must be >= 0")
	}
	return nil
}
