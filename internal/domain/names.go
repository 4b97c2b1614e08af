package domain

import "strings"

// CompactName shortens a full name with three or more components to
// "<last> <first initial>.<patronymic initial>." for narrow vacation
// lists. Shorter names pass through unchanged.
func CompactName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 3 {
		return strings.TrimSpace(full)
	}
	return parts[0] + " " + initial(parts[1]) + "." + initial(parts[2]) + "."
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
