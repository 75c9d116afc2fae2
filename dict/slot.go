package dict

// Slot names one of the fixed dictionary positions a DictEntry can occupy.
// A flat enum-indexed array plays the role of 18 nullable named fields,
// keeping the UnionKey -> []Slot tables (see package starter) small data
// rather than a thicket of field references.
type Slot int

const (
	STCharacters Slot = iota
	STPhrases
	STPunctuations
	TSCharacters
	TSPhrases
	TSPunctuations
	TWPhrases
	TWPhrasesRev
	TWVariants
	TWVariantsRev
	TWVariantsRevPhrases
	HKVariants
	HKVariantsRev
	HKVariantsRevPhrases
	JPSCharacters
	JPSPhrases
	JPVariants
	JPVariantsRev

	numSlots
)

// slotInfo carries the two names a slot is known by: the lower_snake
// snapshot key and the plain-text loader filename.
type slotInfo struct {
	name     string
	filename string
}

var slotTable = [numSlots]slotInfo{
	STCharacters:         {"st_characters", "STCharacters.txt"},
	STPhrases:            {"st_phrases", "STPhrases.txt"},
	STPunctuations:       {"st_punctuations", "STPunctuations.txt"},
	TSCharacters:         {"ts_characters", "TSCharacters.txt"},
	TSPhrases:            {"ts_phrases", "TSPhrases.txt"},
	TSPunctuations:       {"ts_punctuations", "TSPunctuations.txt"},
	TWPhrases:            {"tw_phrases", "TWPhrases.txt"},
	TWPhrasesRev:         {"tw_phrases_rev", "TWPhrasesRev.txt"},
	TWVariants:           {"tw_variants", "TWVariants.txt"},
	TWVariantsRev:        {"tw_variants_rev", "TWVariantsRev.txt"},
	TWVariantsRevPhrases: {"tw_variants_rev_phrases", "TWVariantsRevPhrases.txt"},
	HKVariants:           {"hk_variants", "HKVariants.txt"},
	HKVariantsRev:        {"hk_variants_rev", "HKVariantsRev.txt"},
	HKVariantsRevPhrases: {"hk_variants_rev_phrases", "HKVariantsRevPhrases.txt"},
	JPSCharacters:        {"jps_characters", "JPShinjitaiCharacters.txt"},
	JPSPhrases:           {"jps_phrases", "JPShinjitaiPhrases.txt"},
	JPVariants:           {"jp_variants", "JPVariants.txt"},
	JPVariantsRev:        {"jp_variants_rev", "JPVariantsRev.txt"},
}

// Name returns the snapshot key for this slot, e.g. "st_characters".
func (s Slot) Name() string { return slotTable[s].name }

// Filename returns the plain-text dictionary filename for this slot.
func (s Slot) Filename() string { return slotTable[s].filename }

func (s Slot) String() string { return s.Name() }

// SlotByName resolves a snapshot key to its Slot. ok is false for unknown keys.
func SlotByName(name string) (Slot, bool) {
	for i := Slot(0); i < numSlots; i++ {
		if slotTable[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// AllSlots returns every defined slot, in declaration order.
func AllSlots() []Slot {
	out := make([]Slot, numSlots)
	for i := Slot(0); i < numSlots; i++ {
		out[i] = i
	}
	return out
}
