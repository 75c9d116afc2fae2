package dict

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/zhconv/zhconv/internal/diag"
)

// ParseSnapshot decodes the compact JSON dictionary snapshot format: a
// top-level object whose values are three-element arrays
// `[ {k:v,...}, maxLen, minLen ]`. The legacy two-element form is
// rejected outright, as are inconsistent numeric fields. On any schema
// violation, parsing fails fast and no dictionary is partially published.
func ParseSnapshot(data []byte) (map[string]*Entry, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		off := 0
		return nil, SchemaError{
			Offset:  off,
			Context: contextWindow(data, off),
			Message: fmt.Sprintf("not a JSON object: %s", err),
		}
	}

	out := make(map[string]*Entry, len(top))
	log := diag.Log()

	for name, raw := range top {
		entry, err := parseSnapshotEntry(data, name, raw)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			// Unknown top-level key: ignore with a warning.
			log.Warnf("snapshot: ignoring unknown dictionary name %q", name)
			continue
		}
		out[name] = entry
	}
	return out, nil
}

func parseSnapshotEntry(data []byte, name string, raw json.RawMessage) (*Entry, error) {
	if _, known := SlotByName(name); !known {
		return nil, nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		off := findOffset(data, raw)
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("value is not a JSON array: %s", err)}
	}

	if len(arr) == 2 {
		off := findOffset(data, raw)
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: "legacy two-element snapshot form [dict, maxLen] is no longer accepted; expected [dict, maxLen, minLen]"}
	}
	if len(arr) != 3 {
		off := findOffset(data, raw)
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("expected a 3-element array, got %d elements", len(arr))}
	}

	var m map[string]string
	if err := json.Unmarshal(arr[0], &m); err != nil {
		off := findOffset(data, arr[0])
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("first element is not a string map: %s", err)}
	}

	maxLen, err := parseSnapshotInt(data, name, arr[1], "maxLen")
	if err != nil {
		return nil, err
	}
	minLen, err := parseSnapshotInt(data, name, arr[2], "minLen")
	if err != nil {
		return nil, err
	}

	if maxLen < 0 || minLen < 0 {
		off := findOffset(data, raw)
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("maxLen/minLen must be >= 0, got %d/%d", maxLen, minLen)}
	}
	if maxLen > 0 && minLen > maxLen {
		off := findOffset(data, raw)
		return nil, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("minLen (%d) must be <= maxLen (%d)", minLen, maxLen)}
	}

	return &Entry{Dict: m, MaxKeyLen: maxLen, MinKeyLen: minLen}, nil
}

func parseSnapshotInt(data []byte, name string, raw json.RawMessage, field string) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		off := findOffset(data, raw)
		return 0, SchemaError{Name: name, Offset: off, Context: contextWindow(data, off),
			Message: fmt.Sprintf("%s is not an integer: %s", field, err)}
	}
	return n, nil
}

// findOffset locates needle within data for error reporting. Falls back to
// 0 when the exact byte slice cannot be located (e.g. it was re-escaped).
func findOffset(data, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	if i := bytes.Index(data, needle); i >= 0 {
		return i
	}
	return 0
}

// contextWindow returns ~16 characters of context around offset, for
// inclusion in a SchemaError message.
func contextWindow(data []byte, offset int) string {
	const radius = 8 // characters on each side
	if offset > len(data) {
		return ""
	}
	start := offset
	for k := 0; k < radius && start > 0; k++ {
		_, size := utf8.DecodeLastRune(data[:start])
		start -= size
	}
	end := offset
	for k := 0; k < radius && end < len(data); k++ {
		_, size := utf8.DecodeRune(data[end:])
		end += size
	}
	return string(data[start:end])
}

// WriteSnapshotCompact serializes dicts with no extraneous whitespace.
// Iteration order is implementation-defined; this is not the canonical
// on-disk form.
func WriteSnapshotCompact(dicts map[string]*Entry) ([]byte, error) {
	m := make(map[string][3]interface{}, len(dicts))
	for name, e := range dicts {
		m[name] = [3]interface{}{e.Dict, e.MaxKeyLen, e.MinKeyLen}
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, IOError{Op: "write", Err: err}
	}
	return buf, nil
}

// WriteSnapshotPretty serializes dicts as the canonical on-disk form:
// two-space indent, one key per line, dictionary names sorted
// alphabetically and each dictionary's own keys sorted by
// (len_utf16(key) asc, key asc), for byte-for-byte reproducibility.
func WriteSnapshotPretty(dicts map[string]*Entry) ([]byte, error) {
	names := make([]string, 0, len(dicts))
	for name := range dicts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, name := range names {
		e := dicts[name]
		buf.WriteString("  ")
		writeJSONString(&buf, name)
		buf.WriteString(": [\n")
		writeEntryPretty(&buf, e, "    ")
		fmt.Fprintf(&buf, ",\n    %d,\n    %d\n  ]", e.MaxKeyLen, e.MinKeyLen)
		if i != len(names)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func writeEntryPretty(buf *bytes.Buffer, e *Entry, indent string) {
	keys := make([]string, 0, len(e.Dict))
	for k := range e.Dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := utf16Len(keys[i]), utf16Len(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})

	buf.WriteString(indent + "{\n")
	for i, k := range keys {
		buf.WriteString(indent + "  ")
		writeJSONString(buf, k)
		buf.WriteString(": ")
		writeJSONString(buf, e.Dict[k])
		if i != len(keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(indent + "}")
}

// writeJSONString emits s with the minimal JSON escape set: control
// characters get \u00XX or their short escape, and non-ASCII is emitted
// raw as valid UTF-8.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
