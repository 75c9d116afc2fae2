// Package starter implements the starter index / union mask data
// structures that accelerate longest-match segmentation. A 64-bit mask
// covers all key lengths shipped in the reference dictionaries (longest
// key observed is well under 64 UTF-16 code units); a sparse overflow set
// backstops arbitrarily longer keys without widening the mask.
package starter

import (
	"sync"

	"github.com/zhconv/zhconv/dict"
)

// Index is the per-dictionary starter table: for every starter code
// point, the set of key lengths (in UTF-16 code units) that begin with
// it, plus the maximum such length observed (Cap).
type Index struct {
	Masks    map[rune]uint64
	Overflow map[rune]map[int]struct{}
	Cap      int
}

// BuildIndex computes the Index for a single dictionary entry. Keys are
// examined once at build time; the result is immutable.
func BuildIndex(e *dict.Entry) *Index {
	idx := &Index{Masks: make(map[rune]uint64)}
	for k := range e.Dict {
		cp := firstRune(k)
		l := dict.Utf16Len(k)
		idx.setBit(cp, l)
		if l > idx.Cap {
			idx.Cap = l
		}
	}
	return idx
}

func (idx *Index) setBit(cp rune, l int) {
	if l < 64 {
		idx.Masks[cp] |= 1 << uint(l)
		return
	}
	if idx.Overflow == nil {
		idx.Overflow = make(map[rune]map[int]struct{})
	}
	if idx.Overflow[cp] == nil {
		idx.Overflow[cp] = make(map[int]struct{})
	}
	idx.Overflow[cp][l] = struct{}{}
}

// HasLength reports whether some key of length l starts with cp.
func (idx *Index) HasLength(cp rune, l int) bool {
	if l < 64 {
		return idx.Masks[cp]&(1<<uint(l)) != 0
	}
	if idx.Overflow == nil {
		return false
	}
	_, ok := idx.Overflow[cp][l]
	return ok
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// indexCache memoizes Index values per *dict.Entry: entries are
// immutable once loaded and are shared across several UnionKey groups
// (e.g. st_phrases appears in both S2T and S2T_PUNCT), so the starter
// table for a given entry is computed at most once per process.
var (
	indexCacheMu sync.Mutex
	indexCache   = map[*dict.Entry]*Index{}
)

// indexFor returns the cached Index for e, building it on first request.
func indexFor(e *dict.Entry) *Index {
	indexCacheMu.Lock()
	defer indexCacheMu.Unlock()
	if idx, ok := indexCache[e]; ok {
		return idx
	}
	idx := BuildIndex(e)
	indexCache[e] = idx
	return idx
}
