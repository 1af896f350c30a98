package search

import (
	"regexp"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// Segment is a piece of highlighted text
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments, marking the case-insensitive
// occurrences of term. The term is taken literally in every mode; regex
// searches are not highlighted at all.
func Highlight(text, term string, mode models.SearchMode) []Segment {
	if text == "" {
		return nil
	}
	if term == "" || mode == models.ModeRegex {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			segments = append(segments, Segment{Text: text[pos:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		pos = loc[1]
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}

	return segments
}

// RenderHighlight joins segments, wrapping matches with mark
func RenderHighlight(segments []Segment, mark func(string) string) string {
	var out []byte
	for _, seg := range segments {
		if seg.Match {
			out = append(out, mark(seg.Text)...)
		} else {
			out = append(out, seg.Text...)
		}
	}
	return string(out)
}
