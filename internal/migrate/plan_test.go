package migrate

import (
	"os"
	"path/filepath"
	"testing"
)

const planYAML = `title: Decisions
preamble: Answer below each question.
sections:
  - title: Cryptography
    questions: ["2.1", "56.1", "2.2"]
  - title: Wallet
    questions: ["14.1", "14.2"]
removed: ["16.1"]
postscript: When you're done, tell me.
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}
	return path
}

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan(writePlan(t, planYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Title != "Decisions" {
		t.Errorf("title = %q", plan.Title)
	}
	if len(plan.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(plan.Sections))
	}
	if plan.Sections[0].Title != "Cryptography" {
		t.Errorf("section 0 title = %q", plan.Sections[0].Title)
	}
	if got := plan.Sections[0].Questions[1]; got != "56.1" {
		t.Errorf("section 0 question 1 = %q", got)
	}
	if plan.MappedCount() != 5 {
		t.Errorf("MappedCount = %d, want 5", plan.MappedCount())
	}
	if len(plan.Removed) != 1 || plan.Removed[0] != "16.1" {
		t.Errorf("removed = %v", plan.Removed)
	}
	if plan.Postscript == "" {
		t.Error("postscript not loaded")
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	if _, err := LoadPlan(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing plan file")
	}
}

func TestLoadPlan_NoSections(t *testing.T) {
	if _, err := LoadPlan(writePlan(t, "title: Empty\n")); err == nil {
		t.Error("expected an error for a plan without sections")
	}
}

func TestLoadPlan_BadYAML(t *testing.T) {
	if _, err := LoadPlan(writePlan(t, "sections: [unclosed\n")); err == nil {
		t.Error("expected a parse error")
	}
}
