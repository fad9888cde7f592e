package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "SHAKTI_CONFIG"

// Default values.
const (
	DefaultTimerFile  = ".timer"
	DefaultAICommand  = "aichat"
	DefaultIgnoreFile = ".gitdiffignore"
	DefaultFormatter  = "poetry run black ."
)

// ErrNoCommandFile is returned when cmd.file_path is needed but not set.
var ErrNoCommandFile = errors.New("no command file configured: set cmd.file_path")

// CmdConfig configures the curated command list.
type CmdConfig struct {
	FilePath string `yaml:"file_path" toml:"file_path"`
}

// ReportConfig configures reports.
type ReportConfig struct {
	TimerFilePath string `yaml:"timer_file_path" toml:"timer_file_path"`
}

// GitConfig configures the git helpers.
type GitConfig struct {
	Formatters []string `yaml:"formatters" toml:"formatters"`
	AICommand  string   `yaml:"ai_command" toml:"ai_command"`
	IgnoreFile string   `yaml:"ignore_file" toml:"ignore_file"`
}

// Config is the effective configuration.
type Config struct {
	Cmd    CmdConfig    `yaml:"cmd" toml:"cmd"`
	Report ReportConfig `yaml:"report" toml:"report"`
	Git    GitConfig    `yaml:"git" toml:"git"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Report: ReportConfig{TimerFilePath: DefaultTimerFile},
		Git: GitConfig{
			Formatters: []string{DefaultFormatter},
			AICommand:  DefaultAICommand,
			IgnoreFile: DefaultIgnoreFile,
		},
	}
}

// CommandFile returns the curated command list path or ErrNoCommandFile.
func (c *Config) CommandFile() (string, error) {
	if c.Cmd.FilePath == "" {
		return "", ErrNoCommandFile
	}
	return c.Cmd.FilePath, nil
}

// Candidates returns the config file locations in lookup order.
func Candidates(workDir string) []string {
	var paths []string
	if env := os.Getenv(EnvConfig); env != "" {
		paths = append(paths, expand(env))
	}
	paths = append(paths,
		filepath.Join(workDir, "config.shakti.yaml"),
		filepath.Join(workDir, "config.shakti.toml"),
	)
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".config", "shakti")
		paths = append(paths,
			filepath.Join(dir, "config.yaml"),
			filepath.Join(dir, "config.toml"),
		)
	}
	return paths
}

// Load reads the first existing config file from the lookup chain.
// Returns Default() if no file exists (no error).
// Returns an error only if a file exists but is invalid.
func Load(workDir string) (Config, error) {
	for _, path := range Candidates(workDir) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Default(), fmt.Errorf("failed to read config file: %w", err)
		}
		cfg, err := Parse(data, path)
		if err != nil {
			return Default(), err
		}
		cfg.Path = path
		return cfg, nil
	}
	return Default(), nil
}

// Parse decodes data in the format implied by name's extension, applies
// defaults for missing keys and expands paths.
func Parse(data []byte, name string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", name, err)
	}

	def := Default()
	if cfg.Report.TimerFilePath == "" {
		cfg.Report.TimerFilePath = def.Report.TimerFilePath
	}
	if cfg.Git.Formatters == nil {
		cfg.Git.Formatters = def.Git.Formatters
	}
	if cfg.Git.AICommand == "" {
		cfg.Git.AICommand = def.Git.AICommand
	}
	if cfg.Git.IgnoreFile == "" {
		cfg.Git.IgnoreFile = def.Git.IgnoreFile
	}

	cfg.Cmd.FilePath = expand(cfg.Cmd.FilePath)
	cfg.Report.TimerFilePath = expand(cfg.Report.TimerFilePath)
	return cfg, nil
}

// YAML renders the config as YAML.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// expand expands environment variables and a leading ~.
func expand(path string) string {
	if path == "" {
		return ""
	}
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
