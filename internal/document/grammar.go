// Package document implements the questionnaire's line-oriented grammar:
// a total parser from raw text to the Document model, an in-place answer
// rewriter, and raw-block extraction for restructuring.
//
// The format is markdown-like but structural significance is purely
// positional. A section starts at "## <n>. <title>", a question at
// "### <n>.<m> <title>". Inside a question, a line prefixed "Your answer"
// opens an answer slot that has no closing delimiter: it runs until the
// next structural line (divider, sub-prompt, header, another marker).
// Option lines, table rows and everything else are classified lazily when
// the question is flushed.
//
// Every pass over the text routes through classify so the parser, the
// rewriter and the extractor cannot disagree about where a question or a
// slot begins.
package document

import (
	"regexp"
	"strings"
)

type lineKind int

const (
	lineText lineKind = iota
	lineSection
	lineQuestion
	lineAnswerMarker
	lineDivider
	lineSubPrompt
)

var (
	sectionRe      = regexp.MustCompile(`^## (\d+)\. (.+)`)
	questionRe     = regexp.MustCompile(`^### (\d+\.\d+) (.+)`)
	answerMarkerRe = regexp.MustCompile(`^Your answers?\b`)
	subPromptRe    = regexp.MustCompile(`^If \(([a-z])\),?\s*(.+)`)

	defaultOptionRe = regexp.MustCompile(`^- \*\*\(([a-zA-Z])\)\s*(.+?)\*\*(.*)`)
	plainOptionRe   = regexp.MustCompile(`^- \(([a-zA-Z])\)\s*(.+)`)
	separatorCellRe = regexp.MustCompile(`^[-:]+$`)
)

type lineClass struct {
	kind lineKind
	num  string // section number or question id
	rest string // header title
}

// classify maps one raw line onto the structural grammar. Lines that match
// no marker are text; the caller decides whether text means question body,
// answer content, or noise before the first question.
func classify(raw string) lineClass {
	if m := sectionRe.FindStringSubmatch(raw); m != nil {
		return lineClass{kind: lineSection, num: m[1], rest: strings.TrimSpace(m[2])}
	}
	if m := questionRe.FindStringSubmatch(raw); m != nil {
		return lineClass{kind: lineQuestion, num: m[1], rest: strings.TrimSpace(m[2])}
	}
	if answerMarkerRe.MatchString(raw) {
		return lineClass{kind: lineAnswerMarker}
	}
	if strings.TrimSpace(raw) == "---" {
		return lineClass{kind: lineDivider}
	}
	if subPromptRe.MatchString(raw) {
		return lineClass{kind: lineSubPrompt}
	}
	return lineClass{kind: lineText}
}
