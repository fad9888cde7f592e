package config

import (
	"errors"
	"os"
	"path/filepath"
)

const defaultConfig = `# shakti configuration

cmd:
  # Curated command list browsed by "shakti cmd list" and "shakti cmd list-eval".
  # One command per line, followed by "|"-separated tags:
  #   docker compose up -d | docker | dev
  # file_path: ~/notes/commands.txt

report:
  # Timer log read by "shakti report timer".
  timer_file_path: .timer

git:
  # Formatters run by "shakti git add" before staging.
  formatters:
    - poetry run black .

  # Command that turns a prompt on stdin into a commit message.
  ai_command: aichat

  # Exclusion patterns for diff, tree and signature.
  ignore_file: .gitdiffignore
`

// DefaultYAML returns the commented default config file.
func DefaultYAML() string {
	return defaultConfig
}

// UserPath returns ~/.config/shakti/config.yaml.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shakti", "config.yaml"), nil
}

// Init writes the default config to path, or to UserPath when path is
// empty. Existing files are only replaced when force is set.
// Returns the path written.
func Init(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, err = UserPath(); err != nil {
			return "", err
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}
