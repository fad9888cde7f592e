// Package git wraps the git CLI for shakti's git helpers.
//
// shakti never reimplements git: it asks git for file lists and diffs,
// filters them, and hands the result back to git. All calls go through a
// [cmd.Runner], so handlers can be tested with a scripted fake.
//
// # Queries
//
//   - [Client.ChangedFiles]: "git diff --name-only"
//   - [Client.TrackedFiles]: "git ls-tree -r --name-only HEAD"
//   - [Client.ListFiles]: "git ls-files"
//   - [Client.StagedDiff], [Client.RecentMessages]: input for commit messages
//
// # Terminal Commands
//
// These attach git to the terminal so pagers and difftools work:
//
//   - [Client.Diff]: diff or difftool restricted to a file list
//   - [Client.Add]: stage files
//   - [Client.Passthrough]: run git with arbitrary arguments
package git
