package templates

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// placeholder matches {{ name }} and {{ name | filter }}
var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_-]+)\s*(?:\|\s*([a-z_]+)\s*)?\}\}`)

// render substitutes known variables in s. Unknown variables are left as they are.
func render(s string, values map[string]string) string {
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		groups := placeholder.FindStringSubmatch(match)
		value, ok := values[groups[1]]
		if !ok {
			return match
		}
		return applyFilter(groups[2], value)
	})
}

func applyFilter(filter, value string) string {
	switch filter {
	case "kebab_case":
		return strings.Join(lowerWords(value), "-")
	case "snake_case":
		return strings.Join(lowerWords(value), "_")
	case "pascal_case":
		caser := cases.Title(language.Und)
		var b strings.Builder
		for _, w := range lowerWords(value) {
			b.WriteString(caser.String(w))
		}
		return b.String()
	default:
		return value
	}
}

// lowerWords splits on separators and lower-to-upper case changes
func lowerWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
		prev = r
	}
	flush()

	return words
}
