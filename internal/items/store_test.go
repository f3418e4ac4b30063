package items

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsContiguousIndices(t *testing.T) {
	s := New("a", "b", "c")
	require.Equal(t, 3, s.Len())

	i := 0
	for item := range s.All() {
		assert.Equal(t, i, item.Index)
		i++
	}
	assert.Equal(t, 3, i)
}

func TestGetOutOfRange(t *testing.T) {
	s := New("a", "b")

	item, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, Item{Index: 1, Text: "b"}, item)

	_, err = s.Get(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = s.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAllIsRestartable(t *testing.T) {
	s := New("x", "y")
	assert.Equal(t, []string{"x", "y"}, s.Texts())
	assert.Equal(t, []string{"x", "y"}, s.Texts())
}

func TestAllStopsEarly(t *testing.T) {
	s := New("x", "y", "z")
	var seen []string
	for item := range s.All() {
		seen = append(seen, item.Text)
		if item.Index == 1 {
			break
		}
	}
	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestNilStoreIsEmpty(t *testing.T) {
	var s *Store
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Texts())
}

func TestSampleHasEightItems(t *testing.T) {
	s := Sample()
	assert.Equal(t, 8, s.Len())
	first, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Item 1", first.Text)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFileYAMLSequence(t *testing.T) {
	path := writeFile(t, "items.yaml", "- alpha\n- beta\n")
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, s.Texts())
}

func TestLoadFileYAMLMapping(t *testing.T) {
	path := writeFile(t, "items.yml", "items:\n  - one\n  - two\n  - three\n")
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, s.Texts())
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "items.toml", "items = [\"red\", \"green\"]\n")
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green"}, s.Texts())
}

func TestLoadFilePlainTextSkipsBlankLines(t *testing.T) {
	path := writeFile(t, "items.txt", "first\r\n\n  \nsecond\n")
	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, s.Texts())
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, "items.txt", "\n\n")
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeFile(t, "items.yaml", "items: [unclosed")
	_, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse items")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
