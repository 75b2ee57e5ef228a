package templates

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ManifestPath is the manifest location relative to a template directory
const ManifestPath = "metadata/spin-template.toml"

// Parameter is a value the template content refers to
type Parameter struct {
	Type    string `toml:"type"`
	Prompt  string `toml:"prompt"`
	Default string `toml:"default"`
}

// Manifest is the decoded spin-template.toml
type Manifest struct {
	ManifestVersion string               `toml:"manifest_version"`
	ID              string               `toml:"id"`
	Description     string               `toml:"description"`
	Tags            []string             `toml:"tags"`
	Parameters      map[string]Parameter `toml:"parameters"`
}

// ReadManifest parses the manifest file at path
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}
