// Package convert implements the longest-match segmentation-and-replacement
// engine: the hot path that, given an ordered list of
// dictionaries and their precomputed StarterUnion, rewrites a string by
// replacing every longest-matching prefix with its dictionary value.
package convert

import (
	"sort"
	"strings"

	"github.com/zhconv/zhconv/dict"
	"github.com/zhconv/zhconv/dict/starter"
)

// codeIndex precomputes, once per input string, the byte offset and
// cumulative UTF-16 code-unit offset of every rune boundary. Dictionary
// key lengths are measured in UTF-16 code units, never bytes or runes; Go decodes
// a string directly into code points, so a non-BMP code point is always a
// single rune here and can never be split mid-surrogate-pair by accident.
// Matching "the prefix of length L code units starting at rune i" then
// reduces to locating the rune index whose cumulative offset is exactly
// i's offset + L, which is illegal (and skipped) whenever L would land
// inside what was a surrogate pair in UTF-16.
type codeIndex struct {
	runes      []rune
	byteOffset []int // len = len(runes)+1
	unitOffset []int // len = len(runes)+1
}

func buildCodeIndex(s string) *codeIndex {
	ci := &codeIndex{}
	byteOff := 0
	unitOff := 0
	ci.byteOffset = append(ci.byteOffset, 0)
	ci.unitOffset = append(ci.unitOffset, 0)
	for _, r := range s {
		ci.runes = append(ci.runes, r)
		byteOff += runeByteLen(r)
		unitOff += dict.Utf16RuneLen(r)
		ci.byteOffset = append(ci.byteOffset, byteOff)
		ci.unitOffset = append(ci.unitOffset, unitOff)
	}
	return ci
}

func runeByteLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// endRuneForLength finds the rune index j > i such that the UTF-16 unit
// distance from i to j is exactly l. ok is false if no rune boundary lands
// exactly on that distance (the candidate straddles a surrogate pair, or
// runs past the end of input).
func (ci *codeIndex) endRuneForLength(i, l int) (j int, ok bool) {
	n := len(ci.runes)
	target := ci.unitOffset[i] + l
	j = sort.Search(n+1-i, func(k int) bool { return ci.unitOffset[i+k] >= target }) + i
	if j > n || ci.unitOffset[j] != target {
		return 0, false
	}
	return j, true
}

// ApplyRound runs one segmentation-and-replacement round
// over s sequentially. group is the ordered dictionary list the round was
// built from; union is its precomputed StarterUnion.
func ApplyRound(s string, group []*dict.Entry, union *starter.Union) string {
	if len(s) == 0 || union == nil || len(union.AnyKey) == 0 {
		return s
	}

	ci := buildCodeIndex(s)
	n := len(ci.runes)
	totalUnits := ci.unitOffset[n]

	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < n {
		cp := ci.runes[i]
		step := dict.Utf16RuneLen(cp)

		if !union.AnyKeyStartsWith(cp) {
			out.WriteString(s[ci.byteOffset[i]:ci.byteOffset[i+1]])
			i++
			continue
		}

		capHere := union.MaxCap
		if remaining := totalUnits - ci.unitOffset[i]; remaining < capHere {
			capHere = remaining
		}

		matched := false
		for l := capHere; l >= 1; l-- {
			if l == 1 && step == 2 {
				// A non-BMP code point occupies 2 UTF-16 units; a
				// length-1 key can never legally end here.
				continue
			}
			if !union.HasLength(cp, l) {
				continue
			}
			j, ok := ci.endRuneForLength(i, l)
			if !ok {
				continue
			}
			candidate := s[ci.byteOffset[i]:ci.byteOffset[j]]
			for _, d := range group {
				if val, found := d.Match(candidate); found {
					out.WriteString(val)
					i = j
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}

		if !matched {
			out.WriteString(s[ci.byteOffset[i]:ci.byteOffset[i+1]])
			i++
		}
	}

	return out.String()
}
