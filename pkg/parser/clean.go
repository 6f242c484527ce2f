package parser

import "strings"

// cleanRawText collapses doubled backslash sequences left behind by the
// source log format's inconsistent escaping. Applied to the working copy
// of the raw column before pattern matching.
func cleanRawText(s string) string {
	return strings.ReplaceAll(s, `\\`, "")
}
