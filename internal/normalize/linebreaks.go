package normalize

import "regexp"

var (
	// Sentence end followed by a fullwidth-space indent starts a new line.
	sentenceBreak = regexp.MustCompile("。　")
	// Section headings open with a left black lenticular bracket.
	headingBreak = regexp.MustCompile("【")
)

// AdjustLineBreaks inserts a newline after each 。　 sequence, keeping the
// fullwidth space on the new line, and before every 【.
func AdjustLineBreaks(s string) string {
	s = sentenceBreak.ReplaceAllString(s, "。\n　")
	return headingBreak.ReplaceAllString(s, "\n【")
}
