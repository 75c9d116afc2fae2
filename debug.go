package zhconv

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zhconv/zhconv/dict"
)

// slotStat summarises one loaded dictionary slot, for DumpDictionaryStats.
type slotStat struct {
	Slot      string
	Entries   int
	MaxKeyLen int
	MinKeyLen int
}

// DumpDictionaryStats renders the size of every populated dictionary slot,
// for human debugging of what a Holder actually loaded. It never
// participates in the conversion path itself.
func (c *Converter) DumpDictionaryStats() string {
	set, err := c.holder.Dictionaries()
	if err != nil {
		return fmt.Sprintf("<dictionaries unavailable: %s>", err)
	}

	var stats []slotStat
	for _, slot := range dict.AllSlots() {
		e := set.Get(slot)
		if e == nil {
			continue
		}
		stats = append(stats, slotStat{
			Slot:      slot.Name(),
			Entries:   e.Len(),
			MaxKeyLen: e.MaxKeyLen,
			MinKeyLen: e.MinKeyLen,
		})
	}

	var buf strings.Builder
	buf.WriteString(repr.String(stats))
	return buf.String()
}
