package counter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeFilesSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hail.txt", []byte("Hail to the Victors!"))

	res, err := TokenizeFiles(PathInput(path), quietParams())
	require.NoError(t, err)
	assert.False(t, res.IsTree())
	assert.Equal(t, []int{39, 663, 316, 290, 16566, 914, 0}, res.Tokens)
}

func TestTokenizeFilesDirectory(t *testing.T) {
	root := fixtureDir(t)

	res, err := TokenizeFiles(PathInput(root), quietParams())
	require.NoError(t, err)
	require.True(t, res.IsTree())
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, res.Tree.Names())
}

func TestTokenizeFilesList(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("Hail to the Victors!"))
	b := writeFile(t, dir, "b.txt", []byte("2024 National Champions"))

	res, err := TokenizeFiles(ListInput(a, b), quietParams())
	require.NoError(t, err)
	require.True(t, res.IsTree())

	// A list produces a flat tree keyed by base name, even for one entry.
	assert.Equal(t, []string{"a.txt", "b.txt"}, res.Tree.Names())

	single, err := TokenizeFiles(ListInput(a), quietParams())
	require.NoError(t, err)
	assert.True(t, single.IsTree())
}

func TestTokenizeFilesEmptyPath(t *testing.T) {
	_, err := TokenizeFiles(PathInput(""), quietParams())
	require.ErrorIs(t, err, ErrUnexpectedInput)
}

func TestTokenizeFilesVanishedPath(t *testing.T) {
	_, err := TokenizeFiles(PathInput(filepath.Join(t.TempDir(), "absent")), quietParams())
	require.ErrorIs(t, err, ErrUnexpectedInput)
}

func TestTokenizeFilesListRejectsNonFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("text"))
	missing := filepath.Join(dir, "absent.txt")

	_, err := TokenizeFiles(ListInput(a, missing, dir), quietParams())
	var notFile *NotAFileError
	require.ErrorAs(t, err, &notFile)

	// Every offender is reported at once, not just the first.
	assert.Equal(t, []string{missing, dir}, notFile.Paths)
}

func TestTokenizeFilesListSkipsNonFilesWhenTolerant(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("Hail to the Victors!"))
	missing := filepath.Join(dir, "absent.txt")

	p := quietParams()
	p.ExitOnListError = false

	res, err := TokenizeFiles(ListInput(a, missing, dir), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, res.Tree.Names())
}

func TestTokenizeFilesListUndecodableEntry(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("text"))
	blob := writeFile(t, dir, "blob.bin", binaryBytes)

	// Strict lists fail on the first undecodable entry.
	_, err := TokenizeFiles(ListInput(a, blob), quietParams())
	require.Error(t, err)

	// Tolerant lists skip it.
	p := quietParams()
	p.ExitOnListError = false
	res, err := TokenizeFiles(ListInput(a, blob), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, res.Tree.Names())
}

func TestGetNumTokenFilesDispatch(t *testing.T) {
	root := fixtureDir(t)
	file := filepath.Join(root, "b.txt")

	n, err := GetNumTokenFiles(PathInput(file), quietParams())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = GetNumTokenFiles(PathInput(root), quietParams())
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	n, err = GetNumTokenFiles(ListInput(filepath.Join(root, "a.txt"), file), quietParams())
	require.NoError(t, err)
	assert.Equal(t, 11, n)
}

func TestGetNumTokenFilesEmptyPath(t *testing.T) {
	_, err := GetNumTokenFiles(PathInput(""), quietParams())
	require.ErrorIs(t, err, ErrUnexpectedInput)
}

func TestValidateList(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("text"))
	missing := filepath.Join(dir, "absent.txt")

	files, nonFiles := validateList([]string{a, missing, dir})
	assert.Equal(t, []string{a}, files)
	assert.Equal(t, []string{missing, dir}, nonFiles)
}
