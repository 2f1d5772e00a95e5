package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "html", resolveFormat("resume.html", ""))
	assert.Equal(t, "md", resolveFormat("resume.md", ""))
	assert.Equal(t, "txt", resolveFormat("resume.dat", ""))
	// A configured format wins over the extension guess.
	assert.Equal(t, "html", resolveFormat("resume.dat", "html"))
}

func TestLoadDocumentFormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.dat")
	require.NoError(t, os.WriteFile(path,
		[]byte("<html><body><p>Backend engineer in Go.</p></body></html>"), 0o644))

	// Extension guess decodes the markup as plain text.
	asText, err := loadDocument(path, "")
	require.NoError(t, err)
	assert.Contains(t, asText, "<p>")

	// The override routes it through the HTML decoder instead.
	asHTML, err := loadDocument(path, "html")
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer in Go.", asHTML)
}
