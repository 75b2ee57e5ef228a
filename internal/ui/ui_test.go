package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/egoavara/spin-hub/internal/hub"
)

var entries = []hub.Entry{
	{RawTitle: "Zola SSG", RawSummary: "Static site generator", RawCategory: "template", RawLanguage: "rust", RawAuthor: "fermyon", RawTags: []string{"Static", "blog"}, Path: "hub/zola"},
	{RawTitle: "Redirect", RawCategory: "Sample", RawLanguage: "tinygo", RawAuthor: "mikkel", Path: "/hub/redirect"},
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"", "table", "json", "yaml"} {
		_, err := ParseFormat(s)
		require.NoError(t, err, s)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}

func TestSearchTable(t *testing.T) {
	out := SearchTable(entries)
	for _, want := range []string{"Name", "Description", "Author", "Zola SSG", "Static site generator", "fermyon", "Redirect", "mikkel"} {
		require.Contains(t, out, want)
	}
}

func TestWriteEntries_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries, FormatJSON, "https://developer.fermyon.com/"))

	var views []EntryView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 2)
	require.Equal(t, "Template", views[0].Category)
	require.Equal(t, "Rust", views[0].Language)
	require.Equal(t, []string{"static", "blog"}, views[0].Tags)
	require.Equal(t, "https://developer.fermyon.com/hub/redirect", views[1].URL)
}

func TestWriteEntries_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries[:1], FormatYAML, "https://developer.fermyon.com"))

	var views []EntryView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &views))
	require.Equal(t, "Zola SSG", views[0].Title)
	require.True(t, strings.HasPrefix(buf.String(), "- title: Zola SSG\n"))
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown("Template", entries[0])
	require.Equal(t, "## Template Zola SSG\n\n*by fermyon*\n\nStatic site generator\n", md)
	require.Equal(t, md, RenderMarkdown(md, true))
	require.NotEmpty(t, RenderMarkdown(md, false))
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := Printer{Out: &buf}
	p.Println("plain")
	p.Warning("careful")
	require.Contains(t, buf.String(), "plain\n")
	require.Contains(t, buf.String(), "careful")
}
