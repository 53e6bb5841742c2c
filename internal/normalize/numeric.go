package normalize

import "regexp"

// numericMarkers lists the footnote-marker patterns in priority order.
// Each pattern runs over the output of the previous one, so an earlier
// deletion can keep a later pattern from matching; that ordering is part
// of the published output and must not be rearranged.
var numericMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}!\)`),
	regexp.MustCompile(`\)\d{4}`),
	regexp.MustCompile(`\d{4}\)`),
	regexp.MustCompile(`\d{4}`),
}

// RemoveNumericMarkers deletes every four-digit footnote marker from s.
func RemoveNumericMarkers(s string) string {
	for _, marker := range numericMarkers {
		s = marker.ReplaceAllString(s, "")
	}
	return s
}
