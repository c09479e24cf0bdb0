package counter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureDir builds:
//
//	root/
//	  a.txt        "Hail to the Victors!"   (7 tokens)
//	  b.txt        "2024 National Champions" (4 tokens)
//	  blob.bin     undecodable bytes
//	  sub/
//	    c.txt      "Hail to the Victors!"   (7 tokens)
//	  emptysub/
//	    junk.bin   undecodable bytes
func fixtureDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "a.txt", []byte("Hail to the Victors!"))
	writeFile(t, root, "b.txt", []byte("2024 National Champions"))
	writeFile(t, root, "blob.bin", binaryBytes)

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "c.txt", []byte("Hail to the Victors!"))

	empty := filepath.Join(root, "emptysub")
	require.NoError(t, os.Mkdir(empty, 0o755))
	writeFile(t, empty, "junk.bin", binaryBytes)

	return root
}

func TestTokenizeDir(t *testing.T) {
	root := fixtureDir(t)

	tree, err := TokenizeDir(root, quietParams())
	require.NoError(t, err)

	// Undecodable files are skipped, and a subdirectory with nothing
	// tokenizable is omitted instead of appearing empty.
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, tree.Names())

	node, ok := tree.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, []int{39, 663, 316, 290, 16566, 914, 0}, node.Tokens)

	subNode, ok := tree.Get("sub")
	require.True(t, ok)
	require.False(t, subNode.IsLeaf())
	assert.Equal(t, []string{"c.txt"}, subNode.Subdir.Names())

	assert.Equal(t, 18, tree.TotalTokens())
}

func TestTokenizeDirNonRecursive(t *testing.T) {
	root := fixtureDir(t)

	p := quietParams()
	p.Recursive = false

	tree, err := TokenizeDir(root, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, tree.Names())
	assert.Equal(t, 11, tree.TotalTokens())
}

func TestTokenizeDirIdempotent(t *testing.T) {
	root := fixtureDir(t)

	first, err := TokenizeDir(root, quietParams())
	require.NoError(t, err)
	second, err := TokenizeDir(root, quietParams())
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.TotalTokens(), second.TotalTokens())
}

func TestTokenizeDirIgnorePatterns(t *testing.T) {
	root := fixtureDir(t)

	p := quietParams()
	p.IgnorePatterns = []string{"b.txt", "sub"}

	tree, err := TokenizeDir(root, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, tree.Names())
}

func TestTokenizeDirNotADirectory(t *testing.T) {
	path := writeFile(t, t.TempDir(), "file.txt", []byte("text"))

	_, err := TokenizeDir(path, quietParams())
	var notDir *NotADirectoryError
	require.ErrorAs(t, err, &notDir)

	_, err = TokenizeDir(filepath.Join(t.TempDir(), "absent"), quietParams())
	require.ErrorAs(t, err, &notDir)
}

func TestGetNumTokenDir(t *testing.T) {
	root := fixtureDir(t)

	n, err := GetNumTokenDir(root, quietParams())
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}

func TestGetNumTokenDirNonRecursiveStillSumsSubdirs(t *testing.T) {
	root := fixtureDir(t)

	p := quietParams()
	p.Recursive = false

	// The count descends regardless; Recursive only narrows what the
	// progress total claims up front.
	n, err := GetNumTokenDir(root, p)
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}

func TestGetNumTokenDirEmpty(t *testing.T) {
	n, err := GetNumTokenDir(t.TempDir(), quietParams())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
