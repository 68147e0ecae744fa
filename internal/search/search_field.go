package search

import "strings"

// matchKind selects how a column and the search value are normalized before
// the substring comparison.
type matchKind int

const (
	// plain case-insensitive substring match
	matchText matchKind = iota
	// text match that also compares with internal whitespace stripped from
	// both sides, so "New York" is found by "newyork"
	matchCollapsed
	// spaces, hyphens and parentheses stripped from both sides (phone and
	// passport numbers)
	matchDigits
	// integer column compared as text
	matchNumeric
)

type fieldSpec struct {
	column string
	kind   matchKind
}

// searchFields is the closed set of selectable fields. Anything else falls
// back to the default multi-field predicate.
var searchFields = map[string]fieldSpec{
	"full_name":       {column: "e.full_name", kind: matchCollapsed},
	"email":           {column: "e.email", kind: matchText},
	"phone_number":    {column: "e.phone_number", kind: matchDigits},
	"passport_number": {column: "e.passport_number", kind: matchDigits},
	"city":            {column: "e.city", kind: matchCollapsed},
	"country":         {column: "e.country", kind: matchCollapsed},
	"nationality":     {column: "e.nationality", kind: matchText},
	"gender":          {column: "e.gender", kind: matchText},
	"university":      {column: "ed.university", kind: matchCollapsed},
	"degree":          {column: "ed.degree", kind: matchText},
	"graduation_year": {column: "ed.graduation_year", kind: matchNumeric},
	"company_name":    {column: "we.company_name", kind: matchCollapsed},
	"job_title":       {column: "we.job_title", kind: matchText},
	"department":      {column: "d.name", kind: matchText},
	"position":        {column: "p.name", kind: matchText},
}

// defaultFieldOrder drives the OR-combined predicate used when no (or an
// unknown) field is given.
var defaultFieldOrder = []string{
	"full_name",
	"email",
	"phone_number",
	"passport_number",
	"nationality",
	"city",
	"country",
	"university",
	"degree",
	"company_name",
	"department",
	"position",
}

// buildPredicate returns a parameterized WHERE fragment and its arguments.
// Column expressions come only from the fixed specs above; the search value
// always travels as a bind parameter.
func buildPredicate(field, value string) (string, []any) {
	if spec, ok := searchFields[field]; ok {
		return spec.predicate(value)
	}
	return defaultPredicate(value)
}

func defaultPredicate(value string) (string, []any) {
	frags := make([]string, 0, len(defaultFieldOrder))
	args := make([]any, 0, len(defaultFieldOrder))
	for _, name := range defaultFieldOrder {
		frag, fragArgs := searchFields[name].predicate(value)
		frags = append(frags, frag)
		args = append(args, fragArgs...)
	}
	return "(" + strings.Join(frags, " OR ") + ")", args
}

func (f fieldSpec) predicate(value string) (string, []any) {
	switch f.kind {
	case matchCollapsed:
		return "(LOWER(" + f.column + ") LIKE ? OR REPLACE(LOWER(" + f.column + "), ' ', '') LIKE ?)",
			[]any{containsPattern(value), containsPattern(stripSpaces(value))}
	case matchDigits:
		return "LOWER(TRANSLATE(" + f.column + ", ' -()', '')) LIKE ?",
			[]any{containsPattern(stripPhoneChars(value))}
	case matchNumeric:
		return "CAST(" + f.column + " AS TEXT) LIKE ?",
			[]any{containsPattern(value)}
	default:
		return "LOWER(" + f.column + ") LIKE ?",
			[]any{containsPattern(value)}
	}
}

func containsPattern(value string) string {
	return "%" + strings.ToLower(strings.TrimSpace(value)) + "%"
}

func stripSpaces(value string) string {
	return strings.Join(strings.Fields(value), "")
}

func stripPhoneChars(value string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
}
