package doctor

import (
	"github.com/raphi011/shakti/internal/output"
	"github.com/raphi011/shakti/internal/ui/styles"
)

var symbols = map[Severity]string{
	SeverityOK:      styles.SuccessStyle.Render("✓"),
	SeverityWarning: styles.WarningStyle.Render("⚠"),
	SeverityError:   styles.ErrorStyle.Render("✗"),
}

// Print writes the report grouped by section, followed by a summary.
func Print(out *output.Printer, r Report) {
	for i, group := range []Group{GroupTools, GroupFiles} {
		if i > 0 {
			out.Println()
		}
		out.Heading(string(group) + ":")
		for _, c := range r.Checks {
			if c.Group != group {
				continue
			}
			out.Printf("  %s %s: %s\n", symbols[c.Severity], c.Name, c.Detail)
			if c.Hint != "" {
				out.Printf("      %s\n", styles.MutedStyle.Render(c.Hint))
			}
		}
	}

	out.Println()
	errs, warns := r.Count(SeverityError), r.Count(SeverityWarning)
	if errs == 0 && warns == 0 {
		out.Printf("%s No issues found\n", symbols[SeverityOK])
		return
	}
	out.Printf("Found %d errors and %d warnings.\n", errs, warns)
}
