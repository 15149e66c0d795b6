package records

import "strings"

// Normalize canonicalizes an exercise display name so that differently
// typed variants of the same name group together: trims, lowercases,
// collapses whitespace runs and folds ё into е. Idempotent.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "ё", "е")
	return strings.Join(strings.Fields(name), " ")
}
