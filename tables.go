package mixedtext

// Lookup tables for script classification. The tables are data, not code: to
// refine classification for scripts or symbols not covered yet, extend the
// tables instead of Classify.

// codepointSet is a read-only set of code points.
type codepointSet map[rune]struct{}

func setOf(runes ...rune) codepointSet {
	s := make(codepointSet, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

func (s codepointSet) contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// arabicBlocks are the Unicode blocks of Arabic script:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
var arabicBlocks = [...][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

// generalPunctuation is the Unicode block General Punctuation.
var generalPunctuation = [2]rune{0x2000, 0x206F}

// inlineSymbols are Arabic symbols which appear inline in texts of any script
// and must not break a run of text.
var inlineSymbols = setOf(
	'\uFDFA', // ﷺ  SALLALLAHOU ALAYHE WASALLAM
	'\uFDFB', // ﷻ  JALLAJALALOUHOU
	'\u06DD', // ۝  END OF AYAH
	'\u06DE', // ۞  START OF RUB EL HIZB
	'\u06E9', // ۩  PLACE OF SAJDAH
	'\u06FD', // ۽  SIGN SINDHI AMPERSAND
	'\u06FE', // ۾  SIGN SINDHI POSTPOSITION MEN
)

// urduLetters are letter forms of the Arabic block used by Urdu but not by
// standard Arabic (retroflex and aspirated consonants, Urdu-specific forms
// of heh and yeh).
var urduLetters = setOf(
	'\u0679', // ٹ  TTEH
	'\u067E', // پ  PEH
	'\u0686', // چ  TCHEH
	'\u0688', // ڈ  DDAL
	'\u0691', // ڑ  RREH
	'\u06A9', // ک  KEHEH
	'\u06AF', // گ  GAF
	'\u06BA', // ں  NOON GHUNNA
	'\u06BB', // ڻ  RNOON
	'\u06BE', // ھ  HEH DOACHASHMEE
	'\u06C1', // ہ  HEH GOAL
	'\u06C2', // ۂ  HEH GOAL WITH HAMZA ABOVE
	'\u06C3', // ۃ  TEH MARBUTA GOAL
	'\u06CC', // ی  FARSI YEH
	'\u06D2', // ے  YEH BARREE
)

// arabicPunctuation are punctuation marks and separators of Arabic script.
var arabicPunctuation = setOf(
	'\u060C', // ،  COMMA
	'\u061B', // ؛  SEMICOLON
	'\u061F', // ؟  QUESTION MARK
	'\u0640', // ـ  TATWEEL
	'\u066A', // ٪  PERCENT SIGN
	'\u066B', // ٫  DECIMAL SEPARATOR
	'\u066C', // ٬  THOUSANDS SEPARATOR
	'\u066D', // ٭  FIVE POINTED STAR
	'\u06D4', // ۔  FULL STOP
)

// latinPunctuation are punctuation marks which belong to a Latin run and
// must not merge into an adjacent Arabic run.
var latinPunctuation = setOf(
	' ', '.', ',', ';', ':', '!', '?',
	'(', ')', '[', ']', '{', '}',
	'"', '\'', '\u2014', '\u2013', // em dash, en dash
)

// IsArabicBlock reports whether r is located in one of the Arabic Unicode blocks.
func IsArabicBlock(r rune) bool {
	for _, b := range arabicBlocks {
		if r >= b[0] && r <= b[1] {
			return true
		}
	}
	return false
}

// IsInlineSymbol reports whether r is an Arabic symbol which stays inline with
// text of any script, e.g. ﷺ or ۝.
func IsInlineSymbol(r rune) bool {
	return inlineSymbols.contains(r)
}

// IsUrduSpecific reports whether r is an Urdu letter form not used in
// standard Arabic.
func IsUrduSpecific(r rune) bool {
	return urduLetters.contains(r)
}

// IsArabicPunctuation reports whether r is an Arabic punctuation mark or separator.
func IsArabicPunctuation(r rune) bool {
	return arabicPunctuation.contains(r)
}

// IsLatinPunctuation reports whether r is one of the punctuation marks
// treated as part of Latin text.
func IsLatinPunctuation(r rune) bool {
	return latinPunctuation.contains(r)
}

func isGeneralPunctuation(r rune) bool {
	return r >= generalPunctuation[0] && r <= generalPunctuation[1]
}
