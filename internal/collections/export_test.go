package collections

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportYAML(t *testing.T) {
	s := New(nil)
	p := s.Create("Warm")
	require.True(t, s.AddColor(p.ID, "#1A2B3C"))

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "ws-1", s.List(), FormatYAML))

	var doc exportDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "ws-1", doc.Workspace)
	require.Len(t, doc.Collections, 2)
	require.Equal(t, "Warm", doc.Collections[1].Name)
	require.Equal(t, []string{"#1A2B3C"}, doc.Collections[1].Colors)
	require.Contains(t, buf.String(), "name: Warm")
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, "ws-2", nil, "JSON"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "ws-2", doc["workspace"])
	require.Equal(t, []any{}, doc["collections"])
}

func TestExportUnknownFormat(t *testing.T) {
	require.Error(t, Export(&bytes.Buffer{}, "ws", nil, "csv"))
}
