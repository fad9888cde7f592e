// Package dispatch turns raw argv into a command invocation.
//
// A [Dispatcher] walks three states:
//
//   - parsing global options: leading tokens that start with "-"
//     (--version, --help, --slist, -v, -q); unknown ones are warned
//     about and ignored.
//   - resolving the command: the next token names it.
//   - executing: a registered handler runs with the remaining tokens;
//     anything else runs as an external program on the terminal.
//
// [Group] applies the same walk one level down, so "shakti git diff"
// resolves "git" at the top and "git diff" inside the group.
package dispatch
