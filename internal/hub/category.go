package hub

import "strings"

// CategoryKind enumerates the known content categories
type CategoryKind int

const (
	KindOther CategoryKind = iota
	KindLibrary
	KindPlugin
	KindTemplate
	KindSample
)

// Category is the classified category of an entry.
// Unrecognised values keep their raw text and compare equal only to the same text.
type Category struct {
	Kind CategoryKind
	Raw  string
}

var (
	CategoryLibrary  = Category{Kind: KindLibrary}
	CategoryPlugin   = Category{Kind: KindPlugin}
	CategoryTemplate = Category{Kind: KindTemplate}
	CategorySample   = Category{Kind: KindSample}
)

// OtherCategory returns the category for an unrecognised raw value
func OtherCategory(raw string) Category {
	return Category{Kind: KindOther, Raw: raw}
}

// ParseCategory classifies raw category text, case-insensitively
func ParseCategory(value string) Category {
	switch strings.ToLower(value) {
	case "library":
		return CategoryLibrary
	case "plugin":
		return CategoryPlugin
	case "template":
		return CategoryTemplate
	case "sample":
		return CategorySample
	default:
		return OtherCategory(value)
	}
}

// String returns the display name of the category
func (c Category) String() string {
	switch c.Kind {
	case KindLibrary:
		return "Library"
	case KindPlugin:
		return "Plugin"
	case KindTemplate:
		return "Template"
	case KindSample:
		return "Sample"
	default:
		return c.Raw
	}
}
