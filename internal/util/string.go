package util

import "strings"

// TrimSpace trims ASCII and unicode whitespace.
func TrimSpace(s string) string { return strings.TrimSpace(s) }

// Normalize lower-cases and trims a user-supplied token for lookups.
func Normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
