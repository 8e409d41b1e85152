package espeak

import "github.com/repodiac/espeak-ng-german-loan-words/pkg/conversion/subst"

// IPACorrections is the manually curated list of replacements for
// IPA sequences the Kirshenbaum mapper does not process as expected
// otherwise. The table is empirical, derived from scanning German
// Wiktionary transcriptions; entries are applied in order and later
// entries may act on text introduced by earlier ones ("ɐ̯" becomes
// "ɜ̯" via entry 2 before entry 5 turns it into "a").
var IPACorrections = subst.Chain{
	{From: "aːɐ̯", To: "ɑːɾ"},
	{From: "ɐ", To: "ɜ"},
	{From: "i̯", To: "i"},
	{From: "ʁ", To: "ɾ"},
	{From: "ɜ̯", To: "a"},
	{From: "ʊ̯", To: "ʊ"},
	{From: "o̯", To: "o"},
	{From: "ɪ̯", To: "ɪ"},
	{From: "y̯", To: "y"},
	{From: "y̑", To: "y"},
	{From: "ˑ", To: "ː"},
	{From: "-", To: ""},
	{From: "‿", To: "ː"},
	{From: "͡", To: "ː"}, // combining tie bar, as in t͡s
	{From: "(ː)", To: "ː"},
	{From: "(r)", To: "r"},
	{From: "(ə)", To: "ə"},
	{From: "õ", To: "ɔ"},
	{From: "ɔ̃", To: "ɔ"},
	{From: "ā", To: "ei"},
	{From: "a͂", To: "ɔ"}, // a + combining perispomeni
	{From: "i̊", To: "i"},
	{From: "e̝", To: "e"},
	{From: "r̺", To: "ɾ"},
}

// Corrections is the manually curated list of replacements for
// Kirshenbaum output that espeak-ng does not process as expected
// otherwise. The space rule must stay last: earlier entries ("#"→" ")
// introduce spaces that also have to become word-break markers.
var Corrections = subst.Chain{
	{From: "Y", To: "Y:"},
	{From: "V\"", To: "@r"},
	{From: "V", To: "@"},
	{From: "#", To: " "},
	{From: "&", To: "E"},
	{From: "<trl>", To: ""},
	{From: "<o>", To: ""},
	{From: ".", To: ""},
	{From: "E~", To: "W"},
	{From: " ", To: "||"}, // espeak-ng word break between phoneme groups
}
