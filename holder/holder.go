// Package holder implements the process-wide, lazily-initialised
// dictionary container: a set of dictionary slots loaded once through
// sync.Once, so concurrent first callers block until that single load
// finishes, plus a cache of StarterUnion instances keyed by UnionKey,
// installed by compare-and-set with no lock of this package held across a
// union build.
package holder

import (
	"sync"
	"sync/atomic"

	"github.com/zhconv/zhconv/dict"
	"github.com/zhconv/zhconv/dict/starter"
)

// Loader supplies the dictionary Set on first touch. It runs at most once
// per Holder.
type Loader func() (dict.Set, error)

// Holder is the dictionary store: a once-loaded
// dict.Set and an array of atomically-published starter.Union slots, one
// per starter.Key. After first publication, nothing here is mutated in
// place again, except that ClearUnions resets every union slot to empty
// for test scenarios.
type Holder struct {
	loadOnce sync.Once
	loadErr  error
	set      dict.Set
	loader   Loader

	unions [starter.NumKeys]atomic.Pointer[starter.Union]
}

// New creates a Holder with the given loader. The loader does not run
// until the first call that needs the dictionary set.
func New(loader Loader) *Holder {
	return &Holder{loader: loader}
}

func (h *Holder) ensureLoaded() error {
	h.loadOnce.Do(func() {
		h.set, h.loadErr = h.loader()
	})
	return h.loadErr
}

// Dictionaries forces the dictionary set to be loaded (if not already) and
// returns it.
func (h *Holder) Dictionaries() (dict.Set, error) {
	if err := h.ensureLoaded(); err != nil {
		return dict.Set{}, err
	}
	return h.set, nil
}

// Union returns the StarterUnion for key, building and publishing it on
// first request. Concurrent callers that all observe an empty slot each
// build their own Union; only the first compare-and-swap installs it, and
// the rest discard their build and use the installed value.
func (h *Holder) Union(key starter.Key) (*starter.Union, error) {
	if err := h.ensureLoaded(); err != nil {
		return nil, err
	}
	slot := &h.unions[key]
	if u := slot.Load(); u != nil {
		return u, nil
	}
	group := h.set.Entries(starter.Groups[key])
	built := starter.BuildUnion(group)
	slot.CompareAndSwap(nil, built)
	return slot.Load(), nil
}

// ClearUnions discards every cached union, forcing the next Union call per
// key to rebuild it. Safe to call concurrently with conversions in flight;
// it only costs subsequent rebuilds.
func (h *Holder) ClearUnions() {
	for i := range h.unions {
		h.unions[i].Store(nil)
	}
}
