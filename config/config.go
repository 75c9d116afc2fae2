// Package config maps a ConfigName onto the ordered sequence of
// segmentation rounds that implement it.
package config

import (
	"strings"

	"github.com/zhconv/zhconv/dict/starter"
)

// Name is the closed, case-insensitive enum of the 16 supported
// configurations.
type Name string

const (
	S2T   Name = "s2t"
	T2S   Name = "t2s"
	S2TW  Name = "s2tw"
	TW2S  Name = "tw2s"
	S2TWP Name = "s2twp"
	TW2SP Name = "tw2sp"
	S2HK  Name = "s2hk"
	HK2S  Name = "hk2s"
	T2TW  Name = "t2tw"
	T2TWP Name = "t2twp"
	TW2T  Name = "tw2t"
	TW2TP Name = "tw2tp"
	T2HK  Name = "t2hk"
	HK2T  Name = "hk2t"
	T2JP  Name = "t2jp"
	JP2T  Name = "jp2t"

	// Default is the config a Converter falls back to when asked for an
	// unknown one.
	Default = S2T
)

// Round is one pass of the segmentation engine: a union key that resolves
// (via package holder) to an ordered dictionary group and its
// StarterUnion.
type Round struct {
	Key starter.Key
}

// pipelines holds the rounds for every config without punctuation.
var pipelines = map[Name][]Round{
	S2T:  {{starter.S2T}},
	T2S:  {{starter.T2S}},
	S2TW: {{starter.S2T}, {starter.TwVariantsOnly}},
	TW2S: {{starter.TwRevPair}, {starter.T2S}},

	S2TWP: {{starter.S2T}, {starter.TwPhrasesOnly}, {starter.TwVariantsOnly}},
	TW2SP: {{starter.Tw2SpR1TwRevTriple}, {starter.T2S}},

	S2HK: {{starter.S2T}, {starter.HkVariantsOnly}},
	HK2S: {{starter.HkRevPair}, {starter.T2S}},

	T2TW:  {{starter.TwVariantsOnly}},
	T2TWP: {{starter.TwPhrasesOnly}, {starter.TwVariantsOnly}},
	TW2T:  {{starter.TwRevPair}},
	TW2TP: {{starter.TwRevPair}, {starter.TwPhrasesRevOnly}},

	T2HK: {{starter.HkVariantsOnly}},
	HK2T: {{starter.HkRevPair}},

	T2JP: {{starter.JpVariantsOnly}},
	JP2T: {{starter.JpRevTriple}},
}

// Supported lists every config name, in canonical declaration order.
var Supported = []Name{
	S2T, T2S, S2TW, TW2S, S2TWP, TW2SP, S2HK, HK2S,
	T2TW, T2TWP, TW2T, TW2TP, T2HK, HK2T, T2JP, JP2T,
}

// Parse resolves a case-insensitive config string to a Name. ok is false
// for anything not in Supported.
func Parse(s string) (Name, bool) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Supported {
		if c == n {
			return n, true
		}
	}
	return "", false
}

// Pipeline returns the ordered rounds for name with punctuation handling
// applied. When punctuation is requested, any round whose key is S2T or
// T2S is substituted with its _PUNCT variant (st_punctuations /
// ts_punctuations folded into the same round); every other round is
// untouched. See DESIGN.md's Open Question entry for why this is
// substitution rather than an appended extra round.
func Pipeline(name Name, punctuation bool) []Round {
	base := pipelines[name]
	out := make([]Round, len(base))
	copy(out, base)
	if !punctuation {
		return out
	}
	for i, r := range out {
		switch r.Key {
		case starter.S2T:
			out[i] = Round{starter.S2TPunct}
		case starter.T2S:
			out[i] = Round{starter.T2SPunct}
		}
	}
	return out
}
