// Package normalize applies the fixed text transforms that turn a raw
// paragraph transcript into the published plain text: character
// substitution, numeric footnote-marker removal, then line-break
// adjustment, in that order.
package normalize

// Text runs the full normalization chain over s.
func Text(s string) string {
	s = SubstituteChars(s)
	s = RemoveNumericMarkers(s)
	return AdjustLineBreaks(s)
}
