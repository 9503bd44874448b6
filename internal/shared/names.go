package shared

import "regexp"

// SafeNameRegex matches identifiers that may be interpolated into SQL unquoted.
var SafeNameRegex = regexp.MustCompile("^[a-zA-Z_][a-zA-Z0-9_]*$")

// IsSafeName reports whether name can be used as a table or column identifier.
func IsSafeName(name string) bool {
	return SafeNameRegex.MatchString(name)
}
