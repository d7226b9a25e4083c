package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0o644))
}

func TestSearchCandidates(t *testing.T) {
	assert.Equal(t, []string{"Poppins-Black", "Poppins"}, SearchCandidates("fonts/Poppins-Black.ttf"))
	assert.Equal(t, []string{"Inter"}, SearchCandidates("Inter"))
	assert.Empty(t, SearchCandidates(""))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Poppins", "Poppins-Black.ttf"))
	touch(t, filepath.Join(dir, "readme.txt"))
	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Poppins/Poppins-Black.ttf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindFontPrefersBlack(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Poppins-Regular.ttf"))
	touch(t, filepath.Join(dir, "Poppins-Black.ttf"))
	got, err := FindFont("poppins", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, "Poppins-Black.ttf", filepath.Base(got))

	_, err = FindFont("Inter", []string{dir})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestResolve(t *testing.T) {
	assets := t.TempDir()
	touch(t, filepath.Join(assets, "fonts", "Poppins-Black.ttf"))

	got, err := Resolve(assets, "fonts/Poppins-Black.ttf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(assets, "fonts", "Poppins-Black.ttf"), got)

	// Wrong folder, same family: found by name.
	got, err = Resolve(assets, "type/Poppins-Black.otf")
	require.NoError(t, err)
	assert.Equal(t, "Poppins-Black.ttf", filepath.Base(got))

	_, err = Resolve(assets, "fonts/Missing.ttf")
	assert.True(t, errors.Is(err, ErrNotFound))
}
