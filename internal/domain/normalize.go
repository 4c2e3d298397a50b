package domain

import (
	"strings"
)

// NormalizeAnswer prepares a free-text answer for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace (spaces, tabs, newlines) into one space
func NormalizeAnswer(text string) string {
	fields := strings.Fields(strings.ToLower(text))
	return strings.Join(fields, " ")
}

// NormalizeName trims a display name and collapses inner whitespace without
// changing case. Category names and question titles are compared
// case-sensitively after this.
func NormalizeName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
