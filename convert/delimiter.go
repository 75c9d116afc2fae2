package convert

import "golang.org/x/text/width"

// Delimiter membership: the fixed set of code points at
// which the parallel driver is permitted to split input into independent
// chunks. Three tiers, fastest first: a dense bit array for code points
// below 0x80, a small hash set for CJK punctuation proper, and a fold
// check (golang.org/x/text/width) for the full-width forms of the ASCII
// set — rather than hand-enumerating every full-width punctuation mark,
// a code point delimits if narrowing it lands back on an ASCII delimiter.
//
// Table, spelled out so it can be audited byte for byte:
//
//	ASCII whitespace:    space, \t, \n, \r, \v, \f
//	ASCII punctuation:   , . : ; ! ? ' " ( ) [ ] { }
//	CJK comma/period:    U+3001 、  U+3002 。
//	Corner brackets:     U+300C 「  U+300D 」
//	Book-title marks:    U+300A 《  U+300B》
var asciiDelim [128]bool

func init() {
	for _, b := range []byte(" \t\n\r\v\f,.:;!?'\"()[]{}") {
		asciiDelim[b] = true
	}
}

// cjkDelim holds the non-ASCII delimiter code points. It is small enough
// that a map lookup is effectively O(1) without needing a dense array over
// the whole Basic Multilingual Plane.
var cjkDelim = map[rune]bool{
	0x3001: true, // 、 ideographic comma
	0x3002: true, // 。 ideographic full stop
	0x300C: true, // 「
	0x300D: true, // 」
	0x300A: true, // 《
	0x300B: true, // 》
}

// IsDelimiter reports whether r is a split point for the parallel driver.
func IsDelimiter(r rune) bool {
	if r < 0x80 {
		return asciiDelim[r]
	}
	if cjkDelim[r] {
		return true
	}
	return isFoldedASCIIDelim(r)
}

// isFoldedASCIIDelim reports whether r is the full-width (or otherwise
// wide) rendering of some ASCII delimiter, e.g. U+FF0C （ｆｕｌｌｗｉｄｔｈ
// comma） folds to U+002C (,). Narrowing one rune can never grow it past
// one rune, so a multi-rune fold result means r itself wasn't a simple
// width variant.
func isFoldedASCIIDelim(r rune) bool {
	folded, err := width.Fold.String(string(r))
	if err != nil || folded == string(r) {
		return false
	}
	fr := []rune(folded)
	if len(fr) != 1 || fr[0] >= 0x80 {
		return false
	}
	return asciiDelim[fr[0]]
}
