package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotByName_RoundTrip(t *testing.T) {
	for _, slot := range AllSlots() {
		name := slot.Name()
		got, ok := SlotByName(name)
		require.True(t, ok, "SlotByName(%q)", name)
		assert.Equal(t, slot, got)
	}
}

func TestSlotByName_Unknown(t *testing.T) {
	_, ok := SlotByName("not_a_slot")
	assert.False(t, ok)
}

func TestAllSlots_CoversEighteenSlots(t *testing.T) {
	assert.Len(t, AllSlots(), 18)
}

func TestSlot_FilenamesAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, slot := range AllSlots() {
		fn := slot.Filename()
		require.False(t, seen[fn], "duplicate filename %q", fn)
		seen[fn] = true
	}
}
