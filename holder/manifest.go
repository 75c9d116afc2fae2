package holder

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhconv/zhconv/dict"
)

// Manifest is the optional bootstrap configuration for the process-wide
// dictionary holder: where to load dictionaries from.
type Manifest struct {
	// Snapshot is a path to a single JSON snapshot file.
	Snapshot string `yaml:"snapshot"`
	// TextDir is a path to a directory holding the plain-text dictionary
	// files (STCharacters.txt, ...). Ignored if Snapshot is set.
	TextDir string `yaml:"textDir"`
}

// ParseManifest decodes a YAML bootstrap manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, IOError{Op: "parse manifest", Err: err}
	}
	return m, nil
}

// Loader builds the Loader this manifest describes. An empty manifest
// loads nothing (Empty()).
func (m Manifest) Loader() Loader {
	switch {
	case m.Snapshot != "":
		path := m.Snapshot
		return func() (dict.Set, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return dict.Set{}, IOError{Op: "read snapshot " + path, Err: err}
			}
			byName, err := dict.ParseSnapshot(data)
			if err != nil {
				return dict.Set{}, err
			}
			return dict.NewSet(byName), nil
		}
	case m.TextDir != "":
		return FromTextFS(os.DirFS(m.TextDir))
	default:
		return Empty()
	}
}

// IOError wraps a failure loading the manifest itself or the dictionary
// source it names.
type IOError struct {
	Op  string
	Err error
}

func (e IOError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e IOError) Unwrap() error { return e.Err }
