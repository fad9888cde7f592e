package config

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// validate checks that command lines can be split into words.
// An explicitly empty formatters list is allowed and disables formatting.
func (c *Config) validate() error {
	for i, f := range c.Git.Formatters {
		if err := validateCommand(f); err != nil {
			return fmt.Errorf("invalid git.formatters[%d]: %w", i, err)
		}
	}
	if c.Git.AICommand != "" {
		if err := validateCommand(c.Git.AICommand); err != nil {
			return fmt.Errorf("invalid git.ai_command: %w", err)
		}
	}
	if strings.ContainsRune(c.Git.IgnoreFile, '/') {
		return fmt.Errorf("invalid git.ignore_file %q: must be a file name", c.Git.IgnoreFile)
	}
	return nil
}

func validateCommand(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("%q: %w", line, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("%q: empty command", line)
	}
	return nil
}
