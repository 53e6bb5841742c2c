// Package extract turns fetched markup into a flat paragraph transcript.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// annotationSelector matches the inline elements dropped from the
// transcript: ruby pronunciation guides and footnote superscripts.
const annotationSelector = "rt, sup"

// Parse builds a traversable document from raw markup.
func Parse(markup string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}

// StripAnnotations removes every rt and sup element, descendants included,
// from the document in place.
func StripAnnotations(doc *goquery.Document) {
	doc.Find(annotationSelector).Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})
}

// Paragraphs concatenates the text of every p element in document order,
// each followed by two newlines. Empty paragraphs keep their newlines.
func Paragraphs(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteString("\n\n")
	})
	return b.String()
}
