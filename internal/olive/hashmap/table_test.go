package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Table_PutAssignsMonotonicIndices(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()

	assert.Equal(1, tbl.Put("n"))
	assert.Equal(2, tbl.Put("x"))
	assert.Equal(3, tbl.Put("y"))
}

func Test_Table_PutExistingKeyReturnsOriginalIndex(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()

	first := tbl.Put("n")
	tbl.Put("x")
	second := tbl.Put("n")

	assert.Equal(first, second)
	assert.Equal(2, tbl.Len())
}

func Test_Table_GetReturnsStoredKey(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	idx := tbl.Put("hello")

	key, ok := tbl.Get(idx)
	assert.True(ok)
	assert.Equal("hello", key)

	_, ok = tbl.Get(idx + 1)
	assert.False(ok)
}

func Test_Table_ClearResetsCounter(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	tbl.Put("a")
	tbl.Put("b")
	tbl.Clear()

	assert.Equal(0, tbl.Len())
	assert.Equal(1, tbl.Put("c"))
}
