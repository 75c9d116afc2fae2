package zhconv

import "github.com/zhconv/zhconv/config"

// zhoCheckPrefix bounds the scan window for ZhoCheck: only the leading
// ~100 code points are consulted, enough to classify the script without
// scanning an entire document.
const zhoCheckPrefix = 100

// isCJKIdeograph reports whether r falls in one of the BMP CJK Unified
// Ideographs ranges ZhoCheck restricts itself to: the main block, the
// Extension A block, and the CJK Compatibility Ideographs block.
func isCJKIdeograph(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	default:
		return false
	}
}

// ZhoCheck classifies text as Traditional (1), Simplified (2), or neither
// (0) — mixed, non-Chinese, or empty. It is a process-wide operation: it
// uses the same dictionary holder as every Converter.
func ZhoCheck(text string) int {
	runes := []rune(text)
	if len(runes) > zhoCheckPrefix {
		runes = runes[:zhoCheckPrefix]
	}

	filtered := make([]rune, 0, len(runes))
	for _, r := range runes {
		if isCJKIdeograph(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return 0
	}
	original := string(filtered)

	a := convertWith(config.T2S, false, original)
	b := convertWith(config.S2T, false, original)

	switch {
	case a != original && b == original:
		return 1 // Traditional
	case b != original && a == original:
		return 2 // Simplified
	default:
		return 0
	}
}
