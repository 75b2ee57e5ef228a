package hub

import (
	"strings"
)

// Entry represents a single item published on the Hub index
type Entry struct {
	RawTitle    string   `json:"title"`
	RawSummary  string   `json:"summary"`
	RawCategory string   `json:"category"`
	RawLanguage string   `json:"language"`
	RawAuthor   string   `json:"author"`
	RawTags     []string `json:"tags"`
	Path        string   `json:"path"`

	// Locator data; which fields are present depends on the category.
	Repo       string `json:"repo_url,omitempty"`
	Template   string `json:"template_id,omitempty"`
	Subdir     string `json:"sub_dir,omitempty"`
	Plugin     string `json:"plugin_name,omitempty"`
	PluginLink string `json:"plugin_url,omitempty"`
}

// Title returns the display title of the entry
func (e Entry) Title() string {
	return e.RawTitle
}

// Summary returns the full summary text
func (e Entry) Summary() string {
	return e.RawSummary
}

// Author returns the entry author
func (e Entry) Author() string {
	return e.RawAuthor
}

// Category returns the classified category
func (e Entry) Category() Category {
	return ParseCategory(e.RawCategory)
}

// Language returns the classified implementation language
func (e Entry) Language() Language {
	return ParseLanguage(e.RawLanguage)
}

// Tags returns the entry tags, lowercased
func (e Entry) Tags() []string {
	tags := make([]string, len(e.RawTags))
	for i, t := range e.RawTags {
		tags[i] = strings.ToLower(t)
	}
	return tags
}

// TitleWords returns the whitespace-separated words of the title, lowercased
func (e Entry) TitleWords() []string {
	words := strings.Fields(e.RawTitle)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// RepoURL returns the source repository URL, if any
func (e Entry) RepoURL() (string, bool) {
	return e.Repo, e.Repo != ""
}

// TemplateID returns the template identifier, if any
func (e Entry) TemplateID() (string, bool) {
	return e.Template, e.Template != ""
}

// SubDir returns the sub-directory within the repository that holds the content, if any
func (e Entry) SubDir() (string, bool) {
	return e.Subdir, e.Subdir != ""
}

// PluginName returns the name the plugin is installed under, if any
func (e Entry) PluginName() (string, bool) {
	return e.Plugin, e.Plugin != ""
}

// PluginURL returns the plugin manifest URL, if any
func (e Entry) PluginURL() (string, bool) {
	return e.PluginLink, e.PluginLink != ""
}

// URL returns the Hub web page for the entry
func (e Entry) URL(base string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(e.Path, "/")
}

const shortSummaryLen = 60

// ShortSummary returns the summary truncated on a word boundary for tabular output
func (e Entry) ShortSummary() string {
	if len(e.RawSummary) < shortSummaryLen {
		return e.RawSummary
	}
	const suffix = "..."
	return truncateToWordBoundary(e.RawSummary, shortSummaryLen-len(suffix), 5) + suffix
}

// truncateToWordBoundary cuts source at the last whitespace before maxLen.
// If no whitespace is found at or above minLen, it cuts hard at maxLen.
func truncateToWordBoundary(source string, maxLen, minLen int) string {
	if len(source) <= maxLen {
		return source
	}

	for i := maxLen - 1; i >= minLen; i-- {
		if source[i] == ' ' || source[i] == '\t' || source[i] == '\n' {
			return strings.TrimSpace(source[:i])
		}
	}

	return source[:maxLen]
}
