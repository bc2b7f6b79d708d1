// Package extraction provides heuristic extraction of skills, experience and education requirements from free text.
package extraction

import "strings"

// Extractor pulls candidate values out of unstructured text.
// Implementations never fail: a miss returns an empty slice.
type Extractor interface {
	Extract(text string) []string
}

// dedupe returns values with case-insensitive duplicates and blanks removed, keeping the first spelling.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, v)
	}
	return result
}
