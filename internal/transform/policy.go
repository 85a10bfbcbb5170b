package transform

import "fmt"

// Policy decides what Driver.Run does after a record fails.
type Policy int

const (
	// ContinueOnError records the failure, moves on to the next record and
	// returns every failure together once all records were visited.
	ContinueOnError Policy = iota
	// AbortOnError stops at the first failure. Records after it are left
	// untouched and counted as skipped.
	AbortOnError
)

// ParsePolicy maps the configuration names "continue" and "abort" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "continue", "":
		return ContinueOnError, nil
	case "abort":
		return AbortOnError, nil
	}
	return 0, fmt.Errorf("unknown transform policy %q", s)
}

func (p Policy) String() string {
	switch p {
	case ContinueOnError:
		return "continue"
	case AbortOnError:
		return "abort"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}
