package doctor

// Severity grades a check result.
type Severity int

const (
	// SeverityOK means the check passed.
	SeverityOK Severity = iota
	// SeverityWarning means a feature is degraded or unavailable.
	SeverityWarning
	// SeverityError means a command cannot work at all.
	SeverityError
)

// Group names the section a check is printed under.
type Group string

const (
	GroupTools Group = "Tools"
	GroupFiles Group = "Files"
)

// Check is the result of a single diagnostic.
type Check struct {
	Group    Group
	Name     string   // tool or file checked
	Detail   string   // what was found
	Hint     string   // how to fix it, empty when OK
	Severity Severity
}

// Report holds the checks in the order they ran.
type Report struct {
	Checks []Check
}

// Count returns the number of checks with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, c := range r.Checks {
		if c.Severity == s {
			n++
		}
	}
	return n
}

// Healthy reports whether no check failed with an error.
func (r Report) Healthy() bool {
	return r.Count(SeverityError) == 0
}
