package main

import (
	"github.com/raphi011/shakti/internal/dispatch"
	"github.com/raphi011/shakti/internal/registry"
)

const gitHelp = `Git helpers with .gitdiffignore support.

Usage: shakti git [git options] <subcommand> [args...]

Subcommands not listed below are passed to git unchanged, so
"shakti git status -s" runs "git status -s". Options given before the
subcommand are git options ("shakti git --no-pager diff").

Commands:
  add        Run the formatters, then stage files
  diff       git diff without ignored files
  difftool   git difftool without ignored files
  message    Generate a commit message with AI
  tree       Print the tracked files as a tree
  signature  Extract signatures from source files`

const gitAddHelp = `Run the configured formatters, then stage files.

Usage: shakti git add [--no-format] [git add args...]

Each command in git.formatters runs in the working directory first. If one
fails you are asked whether to continue; declining stops without staging.
--no-format is only recognized before a "--" separator.

Options:
  --no-format  Skip the configured formatters`

const gitDiffHelp = `Run git diff with .gitdiffignore support.

Files and folders listed in .gitdiffignore are left out. All options and
arguments are passed to git diff.

Usage: shakti git [git options] diff [options] [<commit>] [--] [<path>...]`

const gitDifftoolHelp = `Run git difftool with .gitdiffignore support.

Files and folders listed in .gitdiffignore are left out. All options and
arguments are passed to git difftool.

Usage: shakti git [git options] difftool [options] [<commit>] [--] [<path>...]`

const gitMessageHelp = `Generate a commit message for the staged changes.

The two most recent commit messages and the staged diff are sent to
git.ai_command (default: aichat). The reply is printed together with a
ready-to-run "git commit -m" command.

Usage: shakti git message [--copy]

Options:
  -c, --copy  Copy the commit command to the clipboard`

const gitTreeHelp = `Print the files in HEAD as a tree, respecting .gitdiffignore.

Usage: shakti git tree [--complete] [--no-markdown]

Options:
  --complete     Include all files, ignoring .gitdiffignore
  --no-markdown  Use ASCII characters instead of Markdown format`

const gitSignatureHelp = `Extract function and class signatures from source files.

Bodies are replaced by a placeholder and imports are kept, producing a
compact outline to paste into a chat. Python and Go files are supported;
other file types are skipped. Without files, every tracked file not
excluded by .gitdiffignore is processed.

Usage: shakti git signature [--retain-docstring] [--retain-full-docstring] [<file>...]

Options:
  --retain-docstring       Keep the first line of docstrings
  --retain-full-docstring  Keep complete docstrings`

const cmdHelp = `Command-related utilities.

Usage: shakti cmd <subcommand> [args...]

The curated command list is read from cmd.file_path. Each line holds a
command followed by "|"-separated tags:

  docker compose up -d | docker | dev

Commands:
  list       Display the curated command list
  list-eval  Pick, edit and run a curated command`

const cmdListHelp = `Display the curated command list.

With a query, only the entries matching it are shown, best match first.

Usage: shakti cmd list [query...]`

const cmdListEvalHelp = `Pick a command from the curated list, edit it and run it.

Entries are offered through fzf, or a built-in list when fzf is not
installed. The selection can be edited before it runs. --last skips the
selection and offers the previously executed command.

Usage: shakti cmd list-eval [--last]

Options:
  -l, --last  Edit and run the last executed command`

const reportHelp = `Report-related utilities.

Usage: shakti report <subcommand> [args...]

Commands:
  timer  Summarize the work timer log`

const reportTimerHelp = `Summarize the work timer log.

Prints a weekday by week activity heatmap and totals. The log path defaults
to report.timer_file_path.

Usage: shakti report timer [--weeks N] [timer_file_path]

Options:
  -w, --weeks N  Number of weeks shown in the heatmap (default 12)`

const configHelp = `Inspect and create the shakti configuration.

Lookup order: $SHAKTI_CONFIG, ./config.shakti.yaml, ./config.shakti.toml,
~/.config/shakti/config.yaml, ~/.config/shakti/config.toml.

Usage: shakti config <subcommand>

Commands:
  show  Print the effective configuration
  init  Create the default config file
  path  Show which config file is used`

const configInitHelp = `Create a config file with the default settings.

Without a path the user config ~/.config/shakti/config.yaml is written.

Usage: shakti config init [--force] [--stdout] [path]

Options:
  -f, --force   Overwrite an existing config file
  -s, --stdout  Print the default config instead of writing it`

// buildRegistry registers every command handled in-process.
func buildRegistry(a *app) *registry.Registry {
	r := registry.New()

	r.Add("hello", a.hello, "Greet someone")
	r.Add("bye", a.bye, "Say goodbye")

	r.RegisterHelp("git", gitHelp)
	r.Add("git", a.requireGit(dispatch.Group(r, "git", a.gitFallback)), "Git helpers; other subcommands run git")
	r.RegisterHelp("git add", gitAddHelp)
	r.Add("git add", a.gitAdd, "Format, then stage files",
		registry.OptionsFromFlags(gitAddFlags(new(gitAddOptions)))...)
	r.RegisterHelp("git diff", gitDiffHelp)
	r.Add("git diff", a.gitDiff, "git diff without ignored files")
	r.RegisterHelp("git difftool", gitDifftoolHelp)
	r.Add("git difftool", a.gitDifftool, "git difftool without ignored files")
	r.RegisterHelp("git message", gitMessageHelp)
	r.Add("git message", a.gitMessage, "AI commit message for staged changes",
		registry.OptionsFromFlags(gitMessageFlags(new(bool)))...)
	r.RegisterHelp("git tree", gitTreeHelp)
	r.Add("git tree", a.gitTree, "Tree of files in HEAD",
		registry.OptionsFromFlags(gitTreeFlags(new(gitTreeOptions)))...)
	r.RegisterHelp("git signature", gitSignatureHelp)
	r.Add("git signature", a.gitSignature, "Signatures of source files",
		registry.OptionsFromFlags(gitSignatureFlags(new(gitSignatureOptions)))...)

	r.RegisterHelp("cmd", cmdHelp)
	r.Add("cmd", dispatch.Group(r, "cmd", nil), "Curated command list")
	r.RegisterHelp("cmd list", cmdListHelp)
	r.Add("cmd list", a.cmdList, "Show the curated command list")
	r.RegisterHelp("cmd list-eval", cmdListEvalHelp)
	r.Add("cmd list-eval", a.cmdListEval, "Pick, edit and run a curated command",
		registry.OptionsFromFlags(cmdListEvalFlags(new(bool)))...)

	r.RegisterHelp("report", reportHelp)
	r.Add("report", dispatch.Group(r, "report", nil), "Reports")
	r.RegisterHelp("report timer", reportTimerHelp)
	r.Add("report timer", a.reportTimer, "Work timer heatmap and totals",
		registry.OptionsFromFlags(reportTimerFlags(new(int)))...)

	r.RegisterHelp("config", configHelp)
	r.Add("config", dispatch.Group(r, "config", nil), "Configuration")
	r.Add("config show", a.configShow, "Print the effective configuration")
	r.RegisterHelp("config init", configInitHelp)
	r.Add("config init", a.configInit, "Create the default config file",
		registry.OptionsFromFlags(configInitFlags(new(configInitOptions)))...)
	r.Add("config path", a.configPath, "Show which config file is used")

	r.RegisterHelp("doctor", doctorHelp)
	r.Add("doctor", a.doctor, "Check external tools and files",
		registry.OptionsFromFlags(doctorFlags(new(bool)))...)

	return r
}
