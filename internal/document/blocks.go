package document

import "strings"

// RawBlock is a question lifted verbatim from the source: its old id and
// title, plus the unclassified body between its header and the next
// structural header. Restructuring works on raw blocks so hand-authored
// prose survives untouched.
type RawBlock struct {
	ID    string
	Title string
	Body  string
}

// ExtractRawBlocks collects every question block in document order. Only
// question boundaries matter here; the body is kept as-is except trailing
// blank and divider lines, which belong to the old layout, not the
// question.
func ExtractRawBlocks(text string) []RawBlock {
	var blocks []RawBlock
	var cur *RawBlock
	var lines []string

	flush := func() {
		if cur == nil {
			return
		}
		for len(lines) > 0 {
			last := strings.TrimSpace(lines[len(lines)-1])
			if last != "" && last != "---" {
				break
			}
			lines = lines[:len(lines)-1]
		}
		cur.Body = strings.Join(lines, "\n")
		blocks = append(blocks, *cur)
		cur = nil
		lines = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		switch ln := classify(raw); ln.kind {
		case lineQuestion:
			flush()
			cur = &RawBlock{ID: ln.num, Title: ln.rest}
		case lineSection:
			flush()
		default:
			if cur != nil {
				lines = append(lines, raw)
			}
		}
	}
	flush()

	return blocks
}
