package scaffold

import (
	"strings"
	"unicode"
)

// SlugifyName converts a prompted application name into the project slug
// used in generated files.
// - allowed: [a-z0-9-]
// - whitespace/underscore => hyphen
// - drop all other chars
// - collapse multiple hyphens, trim leading/trailing
// - maxLen enforced (truncate after cleanup, then re-trim)
// if result empty or maxLen <= 0 => "web-app"
func SlugifyName(name string, maxLen int) string {
	if maxLen <= 0 {
		return "web-app"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '_' || r == '-':
			b.WriteRune('-')
			// drop all other chars
		}
	}

	result := collapseHyphens(b.String())
	result = strings.Trim(result, "-")

	if len(result) > maxLen {
		result = result[:maxLen]
	}

	result = collapseHyphens(result)
	result = strings.Trim(result, "-")

	if result == "" {
		return "web-app"
	}
	return result
}

func collapseHyphens(s string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range s {
		if r == '-' {
			if !prevHyphen {
				b.WriteRune(r)
			}
			prevHyphen = true
			continue
		}
		prevHyphen = false
		b.WriteRune(r)
	}
	return b.String()
}
