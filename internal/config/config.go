package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Required environment for publishing; both follow the names GitHub Actions
// provides out of the box.
const (
	EnvRepository = "GITHUB_REPOSITORY"
	EnvToken      = "GITHUB_TOKEN"
)

var (
	ErrMissingToken = errors.New("GITHUB_TOKEN environment variable is required")
	ErrMissingRepo  = errors.New("repository (owner/repo) must be specified via --repo or GITHUB_REPOSITORY")
)

// Config holds all application configuration
type Config struct {
	GitHub   GitHubConfig   `toml:"github"`
	Report   ReportConfig   `toml:"report"`
	Estimate EstimateConfig `toml:"estimate"`
}

// GitHubConfig holds publishing settings
type GitHubConfig struct {
	Repo       string `toml:"repo"`
	APIBaseURL string `toml:"api_base_url"`
	Token      string `toml:"-"` // env only, never persisted
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Dir      string `toml:"dir"`
	Filename string `toml:"filename"`
}

// EstimateConfig holds the hours-per-day rates used when no exact data exists
type EstimateConfig struct {
	LowHours  float64 `toml:"low_hours"`
	MidHours  float64 `toml:"mid_hours"`
	HighHours float64 `toml:"high_hours"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIBaseURL: "https://api.github.com",
		},
		Report: ReportConfig{
			Dir:      "Report",
			Filename: "summary.md",
		},
		Estimate: EstimateConfig{
			LowHours:  8.0,
			MidHours:  8.5,
			HighHours: 9.0,
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.Report.Dir = ExpandPath(cfg.Report.Dir)

	return cfg, nil
}

// ApplyEnv overlays environment-provided settings. The environment wins over
// the config file; flags are applied by the caller afterwards and win over
// both.
func (c *Config) ApplyEnv() {
	if repo := os.Getenv(EnvRepository); repo != "" {
		c.GitHub.Repo = repo
	}
	c.GitHub.Token = os.Getenv(EnvToken)
}

// ValidatePublish checks that everything required for posting a comment is
// present. Called before any computation so configuration errors surface
// first.
func (c *Config) ValidatePublish() error {
	if c.GitHub.Token == "" {
		return ErrMissingToken
	}
	if c.GitHub.Repo == "" {
		return ErrMissingRepo
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "work-report", "config.toml")
}
