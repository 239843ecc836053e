package document

import (
	"strconv"
	"strings"
)

// Parse builds the Document model from raw questionnaire text. It is total:
// lines that match no structural pattern become part of the current
// question's body, or are discarded if no question has started yet. A
// malformed document never produces an error, only a smaller model.
func Parse(text string) *Document {
	p := &parser{doc: &Document{}}
	for _, raw := range strings.Split(text, "\n") {
		p.line(raw)
	}
	p.flushQuestion()
	return p.doc
}

// parser is a single-pass state machine over lines. Question bodies are
// buffered and classified only at flush time; answer slots are buffered
// separately while inSlot is set.
type parser struct {
	doc    *Document
	sec    *Section
	q      *Question
	body   []string
	answer []string
	inSlot bool
}

func (p *parser) line(raw string) {
	ln := classify(raw)

	switch ln.kind {
	case lineSection:
		p.flushQuestion()
		id, _ := strconv.Atoi(ln.num)
		p.sec = &Section{ID: id, Title: ln.rest}
		p.doc.Sections = append(p.doc.Sections, p.sec)
		return

	case lineQuestion:
		p.flushQuestion()
		p.q = &Question{
			ID:         ln.num,
			Title:      ln.rest,
			Options:    []Option{},
			SubPrompts: []string{},
			Answers:    []string{},
		}
		if p.sec != nil {
			p.sec.Questions = append(p.sec.Questions, p.q)
		}
		return
	}

	// Anything before the first question is preamble, not model content.
	if p.q == nil {
		return
	}

	if ln.kind == lineAnswerMarker {
		if p.inSlot {
			p.flushSlot()
		}
		p.inSlot = true
		return
	}

	if p.inSlot {
		switch ln.kind {
		case lineDivider:
			p.flushSlot()
		case lineSubPrompt:
			// The sub-prompt both terminates the slot and belongs to the
			// displayed body, so it is recorded in two places.
			p.flushSlot()
			p.q.SubPrompts = append(p.q.SubPrompts, raw)
			p.body = append(p.body, raw)
		default:
			p.answer = append(p.answer, raw)
		}
		return
	}

	p.body = append(p.body, raw)
}

func (p *parser) flushQuestion() {
	if p.q == nil {
		return
	}
	if p.inSlot {
		p.flushSlot()
	}
	classifyBody(p.q, p.body)
	p.body = nil
	p.q = nil
}

func (p *parser) flushSlot() {
	p.q.Answers = append(p.q.Answers, strings.TrimSpace(strings.Join(p.answer, "\n")))
	p.answer = nil
	p.inSlot = false
}

// classifyBody sorts a question's buffered body lines into options, table
// rows and description text. Relative order is preserved within each
// category; blank lines are dropped from the description.
func classifyBody(q *Question, lines []string) {
	var desc []string

	for _, line := range lines {
		if m := defaultOptionRe.FindStringSubmatch(line); m != nil {
			text := strings.TrimSpace(m[2])
			if extra := strings.TrimSpace(m[3]); extra != "" {
				text += " " + extra
			}
			q.Options = append(q.Options, Option{ID: strings.ToLower(m[1]), Text: text, Default: true})
			continue
		}
		if m := plainOptionRe.FindStringSubmatch(line); m != nil {
			q.Options = append(q.Options, Option{ID: strings.ToLower(m[1]), Text: strings.TrimSpace(m[2])})
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") {
			cells := splitTableRow(trimmed)
			if isSeparatorRow(cells) {
				continue
			}
			if q.Table == nil {
				q.Table = &Table{Headers: cells}
			} else {
				q.Table.Rows = append(q.Table.Rows, cells)
			}
			continue
		}

		if trimmed != "" {
			desc = append(desc, line)
		}
	}

	q.Description = strings.TrimSpace(strings.Join(desc, "\n"))
}

// splitTableRow splits "| a | b |" into its trimmed cells, dropping the
// empty fragments outside the first and last pipe.
func splitTableRow(trimmed string) []string {
	parts := strings.Split(trimmed, "|")
	if len(parts) < 3 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, c := range parts {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// isSeparatorRow reports whether every cell is a dash/colon run, i.e. the
// alignment row under a table header.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorCellRe.MatchString(c) {
			return false
		}
	}
	return true
}
