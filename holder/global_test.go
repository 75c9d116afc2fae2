package holder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhconv/zhconv/dict"
)

func TestGlobal_ReturnsSameHolderAcrossCalls(t *testing.T) {
	SetLoader(Empty())
	a := Global()
	b := Global()
	assert.Same(t, a, b)
}

func TestSetLoader_InstallsAFreshUnloadedHolder(t *testing.T) {
	SetLoader(func() (dict.Set, error) {
		var s dict.Set
		s.Put(dict.STCharacters, dict.NewEntry(map[string]string{"简": "簡"}))
		return s, nil
	})

	set, err := Global().Dictionaries()
	require.NoError(t, err)
	assert.NotNil(t, set.Get(dict.STCharacters))

	SetLoader(Empty())
	set, err = Global().Dictionaries()
	require.NoError(t, err)
	assert.Nil(t, set.Get(dict.STCharacters))
}
