package starter

import "github.com/zhconv/zhconv/dict"

// Union is the merged starter data over an ordered group of dictionaries.
// The group order is preserved so the segmentation engine can break
// length ties by dictionary priority.
type Union struct {
	Group    []*dict.Entry
	Masks    map[rune]uint64
	Overflow map[rune]map[int]struct{}
	AnyKey   map[rune]struct{}
	MaxCap   int
}

// BuildUnion merges the Index of every entry in group, in order. Entries
// that are nil (an unpopulated, optional slot) are skipped.
func BuildUnion(group []*dict.Entry) *Union {
	u := &Union{
		Masks:  make(map[rune]uint64),
		AnyKey: make(map[rune]struct{}),
	}
	for _, e := range group {
		if e == nil {
			continue
		}
		u.Group = append(u.Group, e)
		if e.MaxKeyLen > u.MaxCap {
			u.MaxCap = e.MaxKeyLen
		}
		idx := indexFor(e)
		for cp, mask := range idx.Masks {
			u.Masks[cp] |= mask
			u.AnyKey[cp] = struct{}{}
		}
		for cp, lens := range idx.Overflow {
			if u.Overflow == nil {
				u.Overflow = make(map[rune]map[int]struct{})
			}
			if u.Overflow[cp] == nil {
				u.Overflow[cp] = make(map[int]struct{})
			}
			for l := range lens {
				u.Overflow[cp][l] = struct{}{}
				u.AnyKey[cp] = struct{}{}
			}
		}
	}
	return u
}

// AnyKeyStartsWith is the O(1) early-reject gate used before the
// segmentation inner loop.
func (u *Union) AnyKeyStartsWith(cp rune) bool {
	_, ok := u.AnyKey[cp]
	return ok
}

// HasLength reports whether some key in the union's group, of length l,
// starts with cp.
func (u *Union) HasLength(cp rune, l int) bool {
	if l < 64 {
		return u.Masks[cp]&(1<<uint(l)) != 0
	}
	if u.Overflow == nil {
		return false
	}
	_, ok := u.Overflow[cp][l]
	return ok
}
