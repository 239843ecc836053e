package document

import (
	"regexp"
	"strings"
)

// Sub-prompts terminate a slot even when their tail is empty, so the
// rewriter matches looser than the parser's capture pattern.
var slotSubPromptRe = regexp.MustCompile(`^If \([a-z]\)`)

// Rewrite writes user answers back into the raw questionnaire text. Keys
// are AnswerKey values; every byte outside a matched answer slot passes
// through unchanged. A slot whose key is absent, or whose value is blank,
// is emptied rather than left with stale content: the rewriter always
// replaces a slot in full, it never merges old and new text.
//
// It deliberately does not use the parsed model. The current question id
// and a per-question slot counter are re-derived during one forward pass,
// with the same boundary rules the parser applies, so the two passes agree
// on where each slot starts and ends.
func Rewrite(text string, answers map[string]string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	var qid string
	slot := 0

	i := 0
	for i < len(lines) {
		line := lines[i]

		if m := questionRe.FindStringSubmatch(line); m != nil {
			qid = m[1]
			slot = 0
		}

		if !answerMarkerRe.MatchString(line) {
			out = append(out, line)
			i++
			continue
		}

		// Emit the marker, drop the old slot content, then emit the new
		// answer (if any) and a single blank line. The boundary line is
		// reprocessed by the outer loop, not consumed.
		out = append(out, line)
		i++
		for i < len(lines) && !endsSlot(lines[i]) {
			i++
		}
		if qid != "" {
			if ans, ok := answers[AnswerKey(qid, slot)]; ok && strings.TrimSpace(ans) != "" {
				out = append(out, ans)
			}
		}
		out = append(out, "")
		slot++
	}

	return strings.Join(out, "\n")
}

// endsSlot reports whether a line terminates the old content of an answer
// slot. Slots have no closing delimiter, so the scan stops at the first
// line that reads as structure rather than prose: a header, a divider, a
// sub-prompt, the next answer marker, a table row, or a bold lead-in.
// Lines matching none of these stay answer content until one does or the
// input ends.
func endsSlot(line string) bool {
	switch {
	case strings.HasPrefix(line, "### "),
		strings.HasPrefix(line, "## "),
		strings.HasPrefix(line, "---"),
		strings.HasPrefix(line, "**"):
		return true
	}
	if answerMarkerRe.MatchString(line) || slotSubPromptRe.MatchString(line) {
		return true
	}
	return strings.HasPrefix(line, "|") && strings.Contains(line[1:], "|")
}
