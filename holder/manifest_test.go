package holder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhconv/zhconv/dict"
)

func TestParseManifest_DecodesYAML(t *testing.T) {
	m, err := ParseManifest([]byte("snapshot: /tmp/dicts.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dicts.json", m.Snapshot)
	assert.Empty(t, m.TextDir)
}

func TestManifest_LoaderPrefersSnapshotOverTextDir(t *testing.T) {
	m := Manifest{Snapshot: "does-not-exist.json", TextDir: "also-missing"}
	_, err := m.Loader()()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.json")
}

func TestManifest_EmptyManifestLoadsNothing(t *testing.T) {
	var m Manifest
	set, err := m.Loader()()
	require.NoError(t, err)
	assert.Nil(t, set.Get(dict.STCharacters))
}
