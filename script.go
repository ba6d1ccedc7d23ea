package mixedtext

import "unicode"

// ScriptType is the category of script a character or a run of text belongs to.
type ScriptType int8

// Script types. Arabic and Urdu are written right-to-left, English left-to-right.
// Punctuation is neutral and takes the direction of its surroundings.
const (
	Arabic ScriptType = iota
	English
	Urdu
	Punctuation
)

func (st ScriptType) String() string {
	switch st {
	case Arabic:
		return "ARABIC"
	case English:
		return "ENGLISH"
	case Urdu:
		return "URDU"
	case Punctuation:
		return "PUNCTUATION"
	}
	return "UNKNOWN"
}

// IsRTL is true for scripts written right-to-left.
func (st ScriptType) IsRTL() bool {
	return st == Arabic || st == Urdu
}

// Classify returns the script type of a character. Rules apply in this order:
//
//	1. Arabic inline symbol (ﷺ, ۝, …)         → Punctuation
//	2. Urdu-specific letter of an Arabic block → Urdu
//	3. any other code point of an Arabic block → Arabic
//	4. white space                            → Punctuation
//	5. Latin punctuation                      → English
//	6. General Punctuation or Arabic punctuation → Punctuation
//	7. anything else                          → English
//
// Rule 5 keeps Latin punctuation from merging into an adjacent Arabic run.
// Members of the Arabic punctuation table located in the Arabic block are
// matched by rule 3 first.
func Classify(r rune) ScriptType {
	if IsArabicBlock(r) {
		if IsInlineSymbol(r) {
			return Punctuation
		}
		if IsUrduSpecific(r) {
			return Urdu
		}
		return Arabic
	}
	switch {
	case unicode.IsSpace(r):
		return Punctuation
	case IsLatinPunctuation(r):
		return English
	case isGeneralPunctuation(r) || IsArabicPunctuation(r):
		return Punctuation
	}
	return English
}
