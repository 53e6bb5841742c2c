package normalize

import "strings"

// charSubstitutions is the fixed substitution table: decorative marks and
// stray spacing are dropped, half-width Japanese punctuation is widened.
// No non-empty replacement is itself a key of the table.
var charSubstitutions = []struct {
	old string
	new string
}{
	{"一", ""},
	{"　", ""},
	{"*", ""},
	{"^", ""},
	{"¬", ""},
	{"¼", ""},
	{"↓", ""},
	{"↑", ""},
	{"ª", ""},
	{"◎", ""},
	{"▲", ""},
	{"▼", ""},
	{"◆", ""},
	{"º", ""},
	{"↧", ""},
	{"↥", ""},
	{"↠", ""},
	{"↞", ""},
	{"↡", ""},
	{"↢", ""},
	{"↣", ""},
	{"↦", ""},
	{"▽", ""},
	{"△", ""},
	{"ˆ", ""},
	{"ˇ", ""},
	{"｡", "。"},
	{"､", "、"},
	{" ", ""},
}

var charReplacer = newCharReplacer()

func newCharReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(charSubstitutions)*2)
	for _, sub := range charSubstitutions {
		pairs = append(pairs, sub.old, sub.new)
	}
	return strings.NewReplacer(pairs...)
}

// SubstituteChars replaces every occurrence of a mapped character with its
// table value. Unmapped characters pass through unchanged.
func SubstituteChars(s string) string {
	return charReplacer.Replace(s)
}
