package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTablesLoad(t *testing.T) {
	listTables := []string{
		TableHardSkills, TableTools, TableSoftSkills, TableRoles,
		TableStopwords, TableNoiseWords, TableActionVerbs, TableSectionHeaders,
	}
	for _, name := range listTables {
		t.Run(name, func(t *testing.T) {
			items, err := List(name)
			require.NoError(t, err)
			assert.NotEmpty(t, items)
		})
	}

	synonyms, err := Table(TableSynonyms)
	require.NoError(t, err)
	assert.NotEmpty(t, synonyms)
	assert.Equal(t, "javascript", synonyms["js"])
	assert.Equal(t, "kubernetes", synonyms["k8s"])

	weakVerbs, err := MultiTable(TableWeakVerbs)
	require.NoError(t, err)
	assert.NotEmpty(t, weakVerbs["worked"])

	wordSynonyms, err := MultiTable(TableWordSynonyms)
	require.NoError(t, err)
	assert.NotEmpty(t, wordSynonyms["managed"])
}

func TestSet(t *testing.T) {
	hard, err := Set(TableHardSkills)
	require.NoError(t, err)
	assert.True(t, hard["python"])
	assert.False(t, hard["not-a-skill"])
}

func TestUnknownTable(t *testing.T) {
	_, err := List("no_such_table")
	assert.Error(t, err)

	assert.Panics(t, func() { MustSet("no_such_table") })
}

func TestMergeOverrides(t *testing.T) {
	dir := t.TempDir()

	// References captured before the merge must observe it: consumers
	// hold these maps from init.
	hardBefore, err := Set(TableHardSkills)
	require.NoError(t, err)
	synonymsBefore, err := Table(TableSynonyms)
	require.NoError(t, err)

	// A list override appends unseen entries.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hard_skills.json"),
		[]byte(`["python", "zig"]`), 0o644))
	// A map override replaces per key and adds new keys.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "synonyms.json"),
		[]byte(`{"zl": "zig", "js": "javascript"}`), 0o644))
	// Non-JSON files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("ignore me"), 0o644))

	require.NoError(t, MergeOverrides(dir))

	hard, err := Set(TableHardSkills)
	require.NoError(t, err)
	assert.True(t, hard["zig"], "override entries must be added")
	assert.True(t, hard["python"], "embedded entries must survive")

	synonyms, err := Table(TableSynonyms)
	require.NoError(t, err)
	assert.Equal(t, "zig", synonyms["zl"])
	assert.Equal(t, "kubernetes", synonyms["k8s"], "untouched keys must survive")

	assert.True(t, hardBefore["zig"], "pre-merge set references must see the merge")
	assert.Equal(t, "zig", synonymsBefore["zl"], "pre-merge table references must see the merge")
}

func TestMergeOverridesMissingDir(t *testing.T) {
	assert.Error(t, MergeOverrides("/no/such/dir"))
}
