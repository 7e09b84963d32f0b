package salary

import "strings"

// Filter narrows a record set before aggregation or display. Zero values
// (or "all") mean "no constraint"; the populated constraints are conjunctive.
type Filter struct {
	Department string // exact match; "" or "all" keeps every department
	Year       string // prefix match on Month (YYYY)
	Month      string // exact match on Month (YYYY-MM)
	Search     string // substring on employee name or department
}

// Apply returns the records that satisfy every populated constraint. The
// input slice is never mutated; order is preserved.
func (f Filter) Apply(records []SalaryRecord) []SalaryRecord {
	out := make([]SalaryRecord, 0, len(records))
	for _, r := range records {
		if f.matches(&r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r *SalaryRecord) bool {
	if f.Department != "" && f.Department != "all" && r.Department != f.Department {
		return false
	}
	if f.Year != "" && !strings.HasPrefix(r.Month, f.Year) {
		return false
	}
	if f.Month != "" && r.Month != f.Month {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(r.EmployeeName, f.Search) &&
		!strings.Contains(r.Department, f.Search) {
		return false
	}
	return true
}
