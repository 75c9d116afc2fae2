package starter

import "github.com/zhconv/zhconv/dict"

// Key is the closed enum of StarterUnion identities. Each key names a
// specific ordered group of dictionary slots.
type Key int

const (
	S2T Key = iota
	S2TPunct
	T2S
	T2SPunct
	TwPhrasesOnly
	TwVariantsOnly
	TwPhrasesRevOnly
	TwRevPair
	Tw2SpR1TwRevTriple
	HkVariantsOnly
	HkRevPair
	JpVariantsOnly
	JpRevTriple

	numKeys
)

// NumKeys is the number of defined union keys, used by package holder to
// size its fixed array of lazily-published union slots.
const NumKeys = int(numKeys)

// Groups maps each Key to its ordered list of dictionary slots. Order
// matters: it is the dictionary priority used to break length ties
// during segmentation.
var Groups = map[Key][]dict.Slot{
	S2T:      {dict.STPhrases, dict.STCharacters},
	S2TPunct: {dict.STPhrases, dict.STCharacters, dict.STPunctuations},
	T2S:      {dict.TSPhrases, dict.TSCharacters},
	T2SPunct: {dict.TSPhrases, dict.TSCharacters, dict.TSPunctuations},

	TwPhrasesOnly:    {dict.TWPhrases},
	TwVariantsOnly:   {dict.TWVariants},
	TwPhrasesRevOnly: {dict.TWPhrasesRev},
	TwRevPair:        {dict.TWVariantsRevPhrases, dict.TWVariantsRev},

	Tw2SpR1TwRevTriple: {dict.TWPhrasesRev, dict.TWVariantsRevPhrases, dict.TWVariantsRev},

	HkVariantsOnly: {dict.HKVariants},
	HkRevPair:      {dict.HKVariantsRevPhrases, dict.HKVariantsRev},

	JpVariantsOnly: {dict.JPVariants},
	JpRevTriple:    {dict.JPSPhrases, dict.JPSCharacters, dict.JPVariantsRev},
}

func (k Key) String() string {
	switch k {
	case S2T:
		return "S2T"
	case S2TPunct:
		return "S2T_PUNCT"
	case T2S:
		return "T2S"
	case T2SPunct:
		return "T2S_PUNCT"
	case TwPhrasesOnly:
		return "TwPhrasesOnly"
	case TwVariantsOnly:
		return "TwVariantsOnly"
	case TwPhrasesRevOnly:
		return "TwPhrasesRevOnly"
	case TwRevPair:
		return "TwRevPair"
	case Tw2SpR1TwRevTriple:
		return "Tw2SpR1TwRevTriple"
	case HkVariantsOnly:
		return "HkVariantsOnly"
	case HkRevPair:
		return "HkRevPair"
	case JpVariantsOnly:
		return "JpVariantsOnly"
	case JpRevTriple:
		return "JpRevTriple"
	default:
		return "unknown"
	}
}
