package migrate

import (
	"fmt"
	"strings"

	"github.com/dgallion1/askdoc/internal/document"
)

// PlanError reports every mismatch between a plan and the document it is
// applied to. Findings are collected across the whole plan, not returned
// one at a time, so a single run surfaces the complete set. Migration with
// a mismatched plan produces no output: silent question loss is worse than
// a failed run.
type PlanError struct {
	Unmapped   []string // in the source, but in no plan section and not removed
	Missing    []string // referenced by the plan, but not in the source
	Duplicated []string // claimed by more than one plan position
}

func (e *PlanError) Error() string {
	var parts []string
	if len(e.Unmapped) > 0 {
		parts = append(parts, "unmapped questions: "+strings.Join(e.Unmapped, ", "))
	}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing questions: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Duplicated) > 0 {
		parts = append(parts, "duplicate mappings: "+strings.Join(e.Duplicated, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *PlanError) empty() bool {
	return len(e.Unmapped) == 0 && len(e.Missing) == 0 && len(e.Duplicated) == 0
}

// Check validates a plan against the document text: every source question
// must be claimed by exactly one plan position or listed as removed, and
// every plan id must exist in the source. Returns a *PlanError carrying
// all findings, or nil.
func Check(text string, plan *Plan) error {
	blocks := document.ExtractRawBlocks(text)
	byID := make(map[string]document.RawBlock, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}
	return check(blocks, byID, plan)
}

func check(blocks []document.RawBlock, byID map[string]document.RawBlock, plan *Plan) error {
	perr := &PlanError{}

	mapped := make(map[string]bool)
	for _, sec := range plan.Sections {
		for _, id := range sec.Questions {
			if mapped[id] {
				perr.Duplicated = append(perr.Duplicated, id)
				continue
			}
			mapped[id] = true
			if _, ok := byID[id]; !ok {
				perr.Missing = append(perr.Missing, id)
			}
		}
	}

	removed := plan.removedSet()
	for _, b := range blocks {
		if !mapped[b.ID] && !removed[b.ID] {
			perr.Unmapped = append(perr.Unmapped, b.ID)
		}
	}

	if perr.empty() {
		return nil
	}
	return perr
}

// SourceIDs lists the question ids present in the document, in order.
func SourceIDs(text string) []string {
	blocks := document.ExtractRawBlocks(text)
	ids := make([]string, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	return ids
}

// Migrate regenerates the document under the plan: fresh contiguous
// section and question numbering, original titles, bodies copied through
// verbatim. The plan must pass Check first; a *PlanError aborts with no
// output text.
func Migrate(text string, plan *Plan) (string, error) {
	blocks := document.ExtractRawBlocks(text)
	byID := make(map[string]document.RawBlock, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}
	if err := check(blocks, byID, plan); err != nil {
		return "", err
	}

	var out []string
	if plan.Title != "" {
		out = append(out, "# "+plan.Title, "")
	}
	if plan.Preamble != "" {
		out = append(out, plan.Preamble, "")
	}

	for si, sec := range plan.Sections {
		out = append(out, "---", "", fmt.Sprintf("## %d. %s", si+1, sec.Title), "")
		for qi, oldID := range sec.Questions {
			b := byID[oldID]
			out = append(out, fmt.Sprintf("### %d.%d %s", si+1, qi+1, b.Title), b.Body, "")
		}
	}

	if plan.Postscript != "" {
		out = append(out, "---", "", plan.Postscript, "")
	}

	return strings.Join(out, "\n"), nil
}
