package collections

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// exportDoc is the document written by Export
type exportDoc struct {
	Workspace   string    `json:"workspace" yaml:"workspace"`
	Collections []Palette `json:"collections" yaml:"collections"`
}

// Export writes a workspace's collections to w as JSON or YAML
func Export(w io.Writer, workspaceID string, palettes []Palette, format string) error {
	doc := exportDoc{Workspace: workspaceID, Collections: palettes}
	if doc.Collections == nil {
		doc.Collections = []Palette{}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode collections: %w", err)
		}
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode collections: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode collections: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q (want json or yaml)", format)
	}
	return nil
}
