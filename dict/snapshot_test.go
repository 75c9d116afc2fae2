package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot_HappyDay(t *testing.T) {
	data := []byte(`{
		"st_characters": [{"简": "簡", "体": "體"}, 1, 1],
		"st_phrases": [{"中国": "中國"}, 2, 2]
	}`)
	out, err := ParseSnapshot(data)
	require.NoError(t, err)
	require.Contains(t, out, "st_characters")
	require.Contains(t, out, "st_phrases")

	st := out["st_characters"]
	assert.Equal(t, 1, st.MaxKeyLen)
	assert.Equal(t, 1, st.MinKeyLen)
	v, ok := st.Match("简")
	require.True(t, ok)
	assert.Equal(t, "簡", v)
}

func TestParseSnapshot_UnknownNameIgnored(t *testing.T) {
	data := []byte(`{"not_a_real_slot": [{}, 0, 0]}`)
	out, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseSnapshot_RejectsLegacyTwoElementForm(t *testing.T) {
	data := []byte(`{"st_characters": [{"简": "簡"}, 1]}`)
	_, err := ParseSnapshot(data)
	require.Error(t, err)
	var schemaErr SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Message, "legacy")
}

func TestParseSnapshot_RejectsNotAnObject(t *testing.T) {
	_, err := ParseSnapshot([]byte(`[1, 2, 3]`))
	require.Error(t, err)
}

func TestParseSnapshot_RejectsMinGreaterThanMax(t *testing.T) {
	data := []byte(`{"st_characters": [{"简": "簡"}, 1, 5]}`)
	_, err := ParseSnapshot(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minLen")
}

func TestSnapshotRoundTrip_Compact(t *testing.T) {
	dicts := map[string]*Entry{
		"st_characters": NewEntry(map[string]string{"简": "簡", "体": "體"}),
		"st_phrases":    NewEntry(map[string]string{"中国": "中國"}),
	}
	buf, err := WriteSnapshotCompact(dicts)
	require.NoError(t, err)

	out, err := ParseSnapshot(buf)
	require.NoError(t, err)
	assertDictsEqual(t, dicts, out)
}

func TestSnapshotRoundTrip_Pretty(t *testing.T) {
	dicts := map[string]*Entry{
		"st_characters": NewEntry(map[string]string{"简": "簡", "体": "體"}),
		"ts_characters": NewEntry(map[string]string{"簡": "简"}),
	}
	buf, err := WriteSnapshotPretty(dicts)
	require.NoError(t, err)

	out, err := ParseSnapshot(buf)
	require.NoError(t, err)
	assertDictsEqual(t, dicts, out)
}

func TestWriteSnapshotPretty_SortsDictionaryNames(t *testing.T) {
	dicts := map[string]*Entry{
		"ts_characters": NewEntry(map[string]string{"簡": "简"}),
		"st_characters": NewEntry(map[string]string{"简": "簡"}),
	}
	buf, err := WriteSnapshotPretty(dicts)
	require.NoError(t, err)

	s := string(buf)
	assert.Less(t, indexOf(s, "st_characters"), indexOf(s, "ts_characters"))
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func assertDictsEqual(t *testing.T, want, got map[string]*Entry) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for name, e := range want {
		g, ok := got[name]
		require.True(t, ok, "missing dictionary %q", name)
		assert.Equal(t, e.MaxKeyLen, g.MaxKeyLen, "maxKeyLen for %q", name)
		assert.Equal(t, e.MinKeyLen, g.MinKeyLen, "minKeyLen for %q", name)
		assert.Equal(t, e.Dict, g.Dict, "dict contents for %q", name)
	}
}
