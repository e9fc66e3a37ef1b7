package portfolio

import "strings"

// ParseTags splits a comma-delimited tag string into trimmed, non-empty
// tokens, preserving order. The editing surface edits tag lists as a single
// string; this is the inverse of JoinTags for canonical input.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders a tag sequence in the canonical delimited form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
