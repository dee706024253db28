package parse

import (
	"regexp"
	"unicode/utf8"
)

// paragraphRE matches two or more newlines with any whitespace in between.
var paragraphRE = regexp.MustCompile(`(?:\n[\s\v\p{Z}\x{FEFF}]*){2,}`)

// Chunk is a candidate sentence piece. Start and End are byte offsets into
// the text passed to Chunks; Text == text[Start:End].
type Chunk struct {
	Text      string
	Start     int
	End       int
	Separator bool // paragraph separator, never merged with neighbours
}

// Chunks splits text into paragraph separators and pieces that end right
// after a run of sentence-end markers. Concatenating the chunk texts
// reproduces text exactly.
func (p *Parser) Chunks(text string) []Chunk {
	var chunks []Chunk
	pos := 0
	for _, loc := range paragraphRE.FindAllStringIndex(text, -1) {
		chunks = p.appendSegment(chunks, text, pos, loc[0])
		chunks = append(chunks, Chunk{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1], Separator: true})
		pos = loc[1]
	}
	return p.appendSegment(chunks, text, pos, len(text))
}

// appendSegment cuts text[start:end] after every marker run.
func (p *Parser) appendSegment(chunks []Chunk, text string, start, end int) []Chunk {
	from := start
	inRun := false
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(text[i:end])
		marker := p.isMarker(r)
		if inRun && !marker {
			chunks = append(chunks, Chunk{Text: text[from:i], Start: from, End: i})
			from = i
		}
		inRun = marker
		i += size
	}
	if from < end {
		chunks = append(chunks, Chunk{Text: text[from:end], Start: from, End: end})
	}
	return chunks
}
