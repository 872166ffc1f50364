package utils

import "regexp"

// Canonical 8-4-4-4-12 form, version nibble 1-5, variant nibble 8/9/a/b.
var uuidRegexp = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// IsUUID reports whether s is a textual RFC-4122 v1-v5 UUID. It is a pure
// predicate: no normalization, no parsing.
func IsUUID(s string) bool {
	return uuidRegexp.MatchString(s)
}
