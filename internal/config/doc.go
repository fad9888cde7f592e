// Package config loads shakti's configuration.
//
// # Lookup Order (first existing file wins)
//
//   - $SHAKTI_CONFIG
//   - ./config.shakti.yaml
//   - ./config.shakti.toml
//   - ~/.config/shakti/config.yaml
//   - ~/.config/shakti/config.toml
//
// The format follows the file extension: .toml files are decoded as TOML,
// everything else as YAML. Without any file the defaults apply.
//
// # Keys
//
//	cmd:
//	  file_path: ~/notes/commands.txt   # curated command list
//	report:
//	  timer_file_path: .timer           # timer log
//	git:
//	  formatters: ["poetry run black ."]
//	  ai_command: aichat
//	  ignore_file: .gitdiffignore
//
// Path values expand environment variables and a leading ~.
package config
