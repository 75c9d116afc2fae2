package dict

import (
	"strings"

	"github.com/zhconv/zhconv/internal/diag"
)

// LoadTextFile parses a plain-text dictionary file: one entry per line,
// "key \t value [ \t|space ...ignored remainder]".
// Lines that are blank, or start with "#" or "//" after trimming, are
// comments. A BOM on the first line's key is stripped. Malformed lines are
// skipped with a warning on the diagnostic channel; loading never fails
// because of them.
func LoadTextFile(data []byte) *Entry {
	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	m := make(map[string]string)
	log := diag.Log()

	for i, raw := range lines {
		line := raw
		if i == 0 {
			line = stripBOM(line)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}

		tabIdx := strings.IndexByte(line, '\t')
		if tabIdx < 0 {
			w := LineWarning{LineNumber: i + 1, Line: truncate(line, 40), Reason: "no TAB separator"}
			log.Warnf("dict: %s", w.String())
			continue
		}
		key := line[:tabIdx]
		rest := strings.TrimLeft(line[tabIdx+1:], " \t")
		value := firstToken(rest)

		key = strings.TrimSpace(key)
		if key == "" || value == "" {
			w := LineWarning{LineNumber: i + 1, Line: truncate(line, 40), Reason: "empty key or value"}
			log.Warnf("dict: %s", w.String())
			continue
		}
		m[key] = value
	}

	return NewEntry(m)
}

func stripBOM(s string) string {
	const bom = "﻿"
	return strings.TrimPrefix(s, bom)
}

// firstToken returns the first whitespace/TAB-delimited token of s, i.e.
// the value; any further tokens on the line are an ignored remainder.
func firstToken(s string) string {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s
	}
	return s[:i]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
