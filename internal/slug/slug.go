// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Generate derives a URL-safe slug from a display name. Runs of
// non-alphanumeric characters collapse into a single hyphen and
// leading/trailing hyphens are trimmed: "Seaside Palm Beach" becomes
// "seaside-palm-beach".
func Generate(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
