package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/attuned.releaseprs/internal/git"
	"github.com/wahlandcase/attuned.releaseprs/internal/logging"
)

// RepoFileName is looked up in the repository root before the user config
const RepoFileName = ".relprs.toml"

type Config struct {
	Git    GitConfig    `toml:"git"`
	GitHub GitHubConfig `toml:"github"`
	Log    LogConfig    `toml:"log"`
}

type GitConfig struct {
	// Backend is "cli" (shell out to git) or "native" (go-git)
	Backend  string `toml:"backend"`
	RepoPath string `toml:"repo_path"`
}

type GitHubConfig struct {
	APIURL string `toml:"api_url"`
	// Repository as owner/name, defaults to GITHUB_REPOSITORY
	Repository string `toml:"repository"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Backend:  git.BackendCLI,
			RepoPath: ".",
		},
		GitHub: GitHubConfig{
			APIURL: "https://api.github.com/",
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Path returns the per-user config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relprs.toml"), nil
}

// Load reads explicitPath if given. Otherwise it tries RepoFileName in
// repoDir, then the user config file. Missing files fall back to defaults,
// but an explicitly named file must exist.
func Load(explicitPath, repoDir string) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	candidates := []string{filepath.Join(repoDir, RepoFileName)}
	if userPath, err := Path(); err == nil {
		candidates = append(candidates, userPath)
	}

	for _, path := range candidates {
		cfg, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	return DefaultConfig(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the user config path and returns that path
func (c *Config) Save() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, c.SaveTo(path)
}

// SaveTo writes the config as TOML to path
func (c *Config) SaveTo(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
