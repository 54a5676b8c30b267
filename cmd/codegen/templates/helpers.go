package templates

import (
	"strings"
	"unicode"
)

// exported turns snake_case, kebab-case and camelCase names into an
// exported Go identifier.
func exported(name string) string {
	var sb strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' || r == '-' || r == ' ' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// receiver is the lower-cased first letter of a type name.
func receiver(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "s"
}
