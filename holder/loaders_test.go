package holder

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhconv/zhconv/dict"
)

func TestEmpty_LoadsNoSlots(t *testing.T) {
	set, err := Empty()()
	require.NoError(t, err)
	for _, slot := range dict.AllSlots() {
		assert.Nil(t, set.Get(slot))
	}
}

func TestFromSnapshot_PopulatesNamedSlots(t *testing.T) {
	data := []byte(`{"st_characters": [{"简": "簡"}, 1, 1]}`)
	set, err := FromSnapshot(data)()
	require.NoError(t, err)

	e := set.Get(dict.STCharacters)
	require.NotNil(t, e)
	v, ok := e.Match("简")
	require.True(t, ok)
	assert.Equal(t, "簡", v)
}

func TestFromSnapshot_PropagatesSchemaError(t *testing.T) {
	_, err := FromSnapshot([]byte(`not json`))()
	assert.Error(t, err)
}

func TestFromTextFS_SkipsMissingFilesWithoutError(t *testing.T) {
	fsys := fstest.MapFS{
		"STCharacters.txt": &fstest.MapFile{Data: []byte("简\t簡\n")},
	}
	set, err := FromTextFS(fsys)()
	require.NoError(t, err)

	e := set.Get(dict.STCharacters)
	require.NotNil(t, e)
	assert.Nil(t, set.Get(dict.TSCharacters))
}

func TestFromTextFiles_LoadsFromInMemoryBytes(t *testing.T) {
	set, err := FromTextFiles(map[dict.Slot][]byte{
		dict.STCharacters: []byte("简\t簡\n"),
	})()
	require.NoError(t, err)
	e := set.Get(dict.STCharacters)
	require.NotNil(t, e)
	assert.Equal(t, 1, e.Len())
}
