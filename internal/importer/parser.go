package importer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order; the first one present in the document
// is the verse container.
var contentSelectors = []string{"div.texto-columna", "main", "div.container"}

// versePattern matches "<number> <text>". The separator also accepts no-break
// and other Unicode spaces, which the source pages use after verse numbers.
// The text must stay on one line.
var versePattern = regexp.MustCompile(`^(\d+)[\s\v\p{Z}]+(.+)$`)

type ParsedVerse struct {
	Number int
	Text   string
}

// ParseResult holds the verses found in one chapter page. Dropped counts the
// paragraphs after the first verse that carried no verse number; they are not
// part of Verses.
type ParseResult struct {
	Verses  []ParsedVerse
	Dropped int
}

// ParseChapter extracts verses from a chapter page.
//
// Every non-empty paragraph of the content container is matched against
// versePattern. A paragraph without a leading number becomes verse 1 when no
// verse has been seen yet and is dropped otherwise.
func ParseChapter(r io.Reader) (ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var result ParseResult

	content := findContent(doc)
	if content == nil {
		return result, nil
	}

	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			return
		}

		if verse, ok := matchVerse(text); ok {
			result.Verses = append(result.Verses, verse)
			return
		}

		if len(result.Verses) == 0 {
			result.Verses = append(result.Verses, ParsedVerse{Number: 1, Text: text})
			return
		}

		result.Dropped++
	})

	return result, nil
}

func findContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func matchVerse(text string) (ParsedVerse, bool) {
	m := versePattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedVerse{}, false
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		// too many digits to be a verse number
		return ParsedVerse{}, false
	}

	return ParsedVerse{Number: number, Text: strings.TrimSpace(m[2])}, true
}
