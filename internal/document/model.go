package document

import "fmt"

// Document is the parsed questionnaire: an ordered list of sections, each
// holding its questions in document order. It is rebuilt from the raw text
// on every parse; the text file remains the source of truth.
type Document struct {
	Sections []*Section `json:"sections"`
}

// Section groups questions under one numbered heading.
type Section struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Questions []*Question `json:"questions"`
}

// Question is one numbered prompt: free-form description text, optional
// multiple-choice options, an optional table, and one answer per answer
// slot encountered in the source, in document order.
type Question struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html,omitempty"`
	Options         []Option `json:"options"`
	Table           *Table   `json:"table"`
	SubPrompts      []string `json:"sub_prompts"`
	Answers         []string `json:"answers"`
}

// Option is a single multiple-choice entry. ID is the option letter,
// lower-cased so lookups are insensitive to authoring style. Default marks
// the option that was bold in the source.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Default bool   `json:"default"`
}

// Table is a question's tabular appendix.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// AnswerKey is the lookup key for one answer slot: the question id joined
// with the zero-based index of the slot within that question, e.g. "4.2_0".
func AnswerKey(questionID string, slot int) string {
	return fmt.Sprintf("%s_%d", questionID, slot)
}
