// Package sanitize screens request strings for SQL-injection patterns and
// HTML-escapes what survives. This is defense in depth on top of the
// parameterized queries every repository already uses, not a substitute.
package sanitize

import (
	"regexp"
	"strings"
)

var sqlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(UNION|SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|ALTER|EXEC|EXECUTE)\b`),
	regexp.MustCompile(`(--|/\*|\*/|\bxp_|\bsp_)`),
	regexp.MustCompile(`(;|\|\||&&)`),
}

// escaper covers the reserved characters & < > " ' /.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Suspicious reports whether s matches any configured injection pattern.
func Suspicious(s string) bool {
	for _, p := range sqlPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Escape HTML-escapes the reserved characters in s.
func Escape(s string) string {
	return escaper.Replace(s)
}

// CleanValue validates and escapes one string. The second return is false
// when the value must be rejected.
func CleanValue(s string) (string, bool) {
	if Suspicious(s) {
		return "", false
	}
	return Escape(s), true
}

// CleanAll walks a decoded JSON document and cleans every string it finds,
// in place where possible. It returns the offending field path and false on
// the first suspicious value.
func CleanAll(doc map[string]any) (string, bool) {
	for key, v := range doc {
		switch val := v.(type) {
		case string:
			cleaned, ok := CleanValue(val)
			if !ok {
				return key, false
			}
			doc[key] = cleaned
		case map[string]any:
			if field, ok := CleanAll(val); !ok {
				return key + "." + field, false
			}
		case []any:
			for i, item := range val {
				if s, ok := item.(string); ok {
					cleaned, ok := CleanValue(s)
					if !ok {
						return key, false
					}
					val[i] = cleaned
				}
			}
		}
	}
	return "", true
}
