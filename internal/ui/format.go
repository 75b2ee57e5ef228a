package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/egoavara/spin-hub/internal/hub"
)

// Format selects how search results are written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
	}
}

// EntryView is the serialized shape of an entry in json and yaml output
type EntryView struct {
	Title    string   `json:"title" yaml:"title"`
	Summary  string   `json:"summary" yaml:"summary"`
	Category string   `json:"category" yaml:"category"`
	Language string   `json:"language" yaml:"language"`
	Author   string   `json:"author" yaml:"author"`
	Tags     []string `json:"tags" yaml:"tags"`
	URL      string   `json:"url" yaml:"url"`
}

// Views converts entries for serialization, resolving page URLs against base
func Views(entries []hub.Entry, base string) []EntryView {
	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = EntryView{
			Title:    e.Title(),
			Summary:  e.Summary(),
			Category: e.Category().String(),
			Language: e.Language().String(),
			Author:   e.Author(),
			Tags:     e.Tags(),
			URL:      e.URL(base),
		}
	}
	return views
}

// WriteEntries writes entries to w in the given format
func WriteEntries(w io.Writer, entries []hub.Entry, format Format, base string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Views(entries, base))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Views(entries, base)); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, SearchTable(entries))
		return err
	}
}
