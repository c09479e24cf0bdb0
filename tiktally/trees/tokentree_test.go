package trees

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenTreeInsertionOrder(t *testing.T) {
	tree := NewTokenTree()
	tree.AddTokens("b.txt", []int{1, 2})
	tree.AddTokens("a.txt", []int{3})
	tree.AddSubtree("sub", NewTokenTree())

	assert.Equal(t, []string{"b.txt", "a.txt", "sub"}, tree.Names())
	assert.Equal(t, 3, tree.Len())
}

func TestTokenTreeDuplicateKeepsPosition(t *testing.T) {
	tree := NewTokenTree()
	tree.AddTokens("a.txt", []int{1})
	tree.AddTokens("b.txt", []int{2})
	tree.AddTokens("a.txt", []int{9, 9})

	assert.Equal(t, []string{"a.txt", "b.txt"}, tree.Names())
	node, ok := tree.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, []int{9, 9}, node.Tokens)
}

func TestTokenTreeGet(t *testing.T) {
	tree := NewTokenTree()
	tree.AddTokens("a.txt", []int{1})

	node, ok := tree.Get("a.txt")
	require.True(t, ok)
	assert.True(t, node.IsLeaf())

	_, ok = tree.Get("missing.txt")
	assert.False(t, ok)
}

func TestTokenTreeTotalTokens(t *testing.T) {
	sub := NewTokenTree()
	sub.AddTokens("deep.txt", []int{1, 2, 3})

	tree := NewTokenTree()
	tree.AddTokens("a.txt", []int{4, 5})
	tree.AddSubtree("sub", sub)

	assert.Equal(t, 5, tree.TotalTokens())
	assert.True(t, NewTokenTree().IsEmpty())
	assert.Equal(t, 0, NewTokenTree().TotalTokens())
}

func TestTokenTreeMarshalJSON(t *testing.T) {
	sub := NewTokenTree()
	sub.AddTokens("deep.txt", []int{7})

	tree := NewTokenTree()
	tree.AddTokens("z.txt", []int{1, 2})
	tree.AddTokens("a.txt", nil)
	tree.AddSubtree("sub", sub)

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	// Insertion order survives marshaling; nil payloads render as empty arrays.
	assert.Equal(t, `{"z.txt":[1,2],"a.txt":[],"sub":{"deep.txt":[7]}}`, string(data))
}
