package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDismissed_MissingFileIsEmptySet(t *testing.T) {
	d, err := LoadDismissed(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.False(t, d.Contains("anything"))
}

func TestDismissedAddAndContains(t *testing.T) {
	d := &Dismissed{IDs: make(map[string]bool)}

	assert.True(t, d.Add("s1"))
	assert.False(t, d.Add("s1"), "adding twice reports no change")
	assert.True(t, d.Contains("s1"))
	assert.False(t, d.Contains("s2"))
}

func TestDismissedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dismissed.json")

	d := &Dismissed{IDs: make(map[string]bool)}
	d.Add("seed-b")
	d.Add("seed-a")
	require.NoError(t, d.Save(path))

	loaded, err := LoadDismissed(path)
	require.NoError(t, err)
	assert.True(t, loaded.Contains("seed-a"))
	assert.True(t, loaded.Contains("seed-b"))
	assert.False(t, loaded.Contains("seed-c"))
}

func TestDismissedSave_SortedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dismissed.json")

	d := &Dismissed{IDs: map[string]bool{"zzz": true, "aaa": true, "mmm": true}}
	require.NoError(t, d.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Less(t, strings.Index(content, "aaa"), strings.Index(content, "mmm"))
	assert.Less(t, strings.Index(content, "mmm"), strings.Index(content, "zzz"))
}
