package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave_WritesUnderDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, nil)
	require.NoError(t, err)

	path, err := store.Save("inv.pdf", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestStoreSave_UniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)

	a, err := store.Save("same-key", []byte("a"))
	require.NoError(t, err)
	b, err := store.Save("same-key", []byte("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "artifacts")
	store, err := NewStore(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "inv.pdf", SanitizeKey("inv.pdf"))
	assert.Equal(t, "a_b_c.pdf", SanitizeKey("a/b c.pdf"))
	assert.Equal(t, "artifact", SanitizeKey("   "))
	assert.Equal(t, ".._.._____.pdf", SanitizeKey("../../тест.pdf"))
	assert.NotContains(t, SanitizeKey("../../escape.pdf"), "/")
	assert.LessOrEqual(t, len(SanitizeKey(strings.Repeat("x", 200))), 50)
}
