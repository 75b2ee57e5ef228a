package hub

import "strings"

// LanguageKind enumerates the recognised implementation languages
type LanguageKind int

const (
	LangOther LanguageKind = iota
	LangRust
	LangJavaScript
	LangPython
	LangGo
)

// Language is the classified language of an entry
type Language struct {
	Kind LanguageKind
	Raw  string
}

var (
	LanguageRust       = Language{Kind: LangRust}
	LanguageJavaScript = Language{Kind: LangJavaScript}
	LanguagePython     = Language{Kind: LangPython}
	LanguageGo         = Language{Kind: LangGo}
)

// languageAliases lists the filter values each canonical language accepts
var languageAliases = map[LanguageKind][]string{
	LangRust:       {"rust", "rs"},
	LangJavaScript: {"javascript", "js", "typescript", "ts"},
	LangPython:     {"python", "python3", "py"},
	LangGo:         {"go", "golang", "tinygo"},
}

// ParseLanguage classifies the language text found in the catalog
func ParseLanguage(value string) Language {
	switch strings.ToLower(value) {
	case "rust":
		return LanguageRust
	case "js/ts", "javascript", "typescript":
		return LanguageJavaScript
	case "python":
		return LanguagePython
	case "go", "tinygo":
		return LanguageGo
	default:
		return Language{Kind: LangOther, Raw: value}
	}
}

// Accepts reports whether a user-supplied language filter selects this language
func (l Language) Accepts(filter string) bool {
	filter = strings.ToLower(filter)
	if l.Kind == LangOther {
		return filter == strings.ToLower(l.Raw)
	}
	for _, alias := range languageAliases[l.Kind] {
		if filter == alias {
			return true
		}
	}
	return false
}

// String returns the display name of the language
func (l Language) String() string {
	switch l.Kind {
	case LangRust:
		return "Rust"
	case LangJavaScript:
		return "JavaScript"
	case LangPython:
		return "Python"
	case LangGo:
		return "Go"
	default:
		return l.Raw
	}
}
