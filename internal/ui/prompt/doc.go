// Package prompt provides simple interactive prompts.
//
// Prompts render on stderr so stdout stays usable in pipelines, and they
// refuse to start when stdin is not a terminal: callers get a cancelled
// result instead of a hung process.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input, optionally prefilled
//   - [Select]: Single selection from a filterable list
package prompt
