package zhconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhconv/zhconv/dict"
)

func TestDumpDictionaryStats_ReportsPopulatedSlots(t *testing.T) {
	installTestDictionaries(t)
	c := New("s2t")
	out := c.DumpDictionaryStats()
	assert.Contains(t, out, "st_characters")
	assert.NotContains(t, out, "<dictionaries unavailable")
}

func TestDumpDictionaryStats_ReportsLoadErrors(t *testing.T) {
	ResetDictionaries(func() (dict.Set, error) {
		return dict.Set{}, errors.New("load failed")
	})
	t.Cleanup(func() {
		ResetDictionaries(func() (dict.Set, error) { return dict.Set{}, nil })
	})

	c := New("s2t")
	out := c.DumpDictionaryStats()
	assert.Contains(t, out, "unavailable")
}
