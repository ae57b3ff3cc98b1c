package keys

import (
	"sort"
	"strings"
)

// EncounterKeyFromIDs produces a canonical key for an enemy roster.
// Behavior: trims ids, lower-cases, replaces spaces with underscores,
// sorts the parts and joins with "+". Roster order does not change the key,
// so the same set of enemies always groups together in battle history.
func EncounterKeyFromIDs(ids []string) string {
	parts := make([]string, 0, len(ids))
	for _, n := range ids {
		s := strings.TrimSpace(n)
		if s == "" {
			continue
		}
		s = strings.ToLower(strings.ReplaceAll(s, " ", "_"))
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}
