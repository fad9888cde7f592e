// Package cmd runs the external programs shakti wraps.
//
// Every subsystem of shakti is glue around other tools (git, formatters,
// fzf, an AI chat CLI), so process execution lives in one place:
//
//   - [OutputContext] captures stdout and folds stderr into the error.
//   - [Exec] implements [Runner], which adds piping a string through a
//     filter program and attaching a child to the terminal.
//
// Failures are reported as [*Error], which keeps the child's exit status
// so the CLI can exit with the same code. [IsNotFound] distinguishes a
// missing binary from a failing one.
//
// Handlers depend on [Runner] rather than on os/exec directly; tests
// substitute [cmdtest.Fake].
//
// Every command is echoed through the context logger when verbose mode is
// on, together with its duration.
package cmd
