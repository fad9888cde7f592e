// Package doctor checks that shakti's external tools and files are in place.
//
// Checks fall into two groups:
//
//   - Tools: git, fzf, the AI chat command and every configured formatter
//     must be on PATH for the commands that use them.
//
//   - Files: the config file, the curated command list, the timer log and
//     the .gitdiffignore file.
//
// Each [Check] carries a [Severity]. Errors break a command outright,
// warnings mean a feature is degraded or unavailable.
//
// # Usage
//
//	report := doctor.Run(ctx, doctor.Env{Config: cfg, WorkDir: dir, InRepo: client.IsInsideRepo})
//	doctor.Print(out, report)
package doctor
