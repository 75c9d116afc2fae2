package holder

import (
	"io/fs"

	"github.com/zhconv/zhconv/dict"
)

// Empty returns a Loader that populates no slots at all. Useful for tests
// and as the zero-configuration default: conversions simply pass text
// through unchanged until a real loader is installed.
func Empty() Loader {
	return func() (dict.Set, error) {
		return dict.Set{}, nil
	}
}

// FromSnapshot returns a Loader that decodes a single JSON snapshot
// into a full dict.Set.
func FromSnapshot(data []byte) Loader {
	return func() (dict.Set, error) {
		byName, err := dict.ParseSnapshot(data)
		if err != nil {
			return dict.Set{}, err
		}
		return dict.NewSet(byName), nil
	}
}

// FromTextFS returns a Loader that reads each dictionary slot's plain-text
// file from fsys, skipping slots whose file
// does not exist. A directory that only carries a handful of the 18 files
// is fine; the rest of the Set remains unpopulated.
func FromTextFS(fsys fs.FS) Loader {
	return func() (dict.Set, error) {
		var set dict.Set
		for _, slot := range dict.AllSlots() {
			data, err := fs.ReadFile(fsys, slot.Filename())
			if err != nil {
				if fsErr, ok := err.(*fs.PathError); ok && fsErr.Err == fs.ErrNotExist {
					continue
				}
				continue
			}
			set.Put(slot, dict.LoadTextFile(data))
		}
		return set, nil
	}
}

// FromTextFiles returns a Loader that loads each given slot directly from
// in-memory plain-text bytes, useful for embedding dictionaries or for
// tests that construct a handful of entries without touching a filesystem.
func FromTextFiles(files map[dict.Slot][]byte) Loader {
	return func() (dict.Set, error) {
		var set dict.Set
		for slot, data := range files {
			set.Put(slot, dict.LoadTextFile(data))
		}
		return set, nil
	}
}
