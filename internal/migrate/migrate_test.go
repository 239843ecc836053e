package migrate

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/askdoc/internal/document"
)

const migrateSrc = `## 4. Legacy

### 4.1 Bar
intro line

Your answer:

---

### 4.2 Foo
body text
Your answer:
old answer
---

## 5. Extras

### 5.1 Baz
baz body

---
`

func validPlan() *Plan {
	return &Plan{
		Title:    "Decisions",
		Preamble: "Answer below.",
		Sections: []PlanSection{
			{Title: "Alpha", Questions: []string{"4.1"}},
			{Title: "Beta", Questions: []string{"5.1"}},
			{Title: "Widgets", Questions: []string{"4.2"}},
		},
	}
}

func TestMigrate_Output(t *testing.T) {
	got, err := Migrate(migrateSrc, validPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bodies are carried verbatim modulo the trailing blank/divider trim,
	// so the full output is pinned literally.
	want := `# Decisions

Answer below.

---

## 1. Alpha

### 1.1 Bar
intro line

Your answer:

---

## 2. Beta

### 2.1 Baz
baz body

---

## 3. Widgets

### 3.1 Foo
body text
Your answer:
old answer
`
	if got != want {
		t.Errorf("migrated output mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestMigrate_Renumbering(t *testing.T) {
	out, err := Migrate(migrateSrc, validPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := document.Parse(out)
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(doc.Sections))
	}
	for i, sec := range doc.Sections {
		if sec.ID != i+1 {
			t.Errorf("section %d has id %d, want %d", i, sec.ID, i+1)
		}
		for j, q := range sec.Questions {
			want := fmt.Sprintf("%d.%d", i+1, j+1)
			if q.ID != want {
				t.Errorf("question id = %q, want %q", q.ID, want)
			}
		}
	}
}

func TestMigrate_OutputReparses(t *testing.T) {
	out, err := Migrate(migrateSrc, validPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Migrating again with an identity plan over the new ids must succeed:
	// the regenerated document is itself a valid source.
	again := &Plan{Sections: []PlanSection{
		{Title: "Everything", Questions: []string{"1.1", "2.1", "3.1"}},
	}}
	if _, err := Migrate(out, again); err != nil {
		t.Errorf("re-migration failed: %v", err)
	}
}

func TestMigrate_RemovedIDsDropped(t *testing.T) {
	plan := &Plan{
		Sections: []PlanSection{
			{Title: "Alpha", Questions: []string{"4.1", "4.2"}},
		},
		Removed: []string{"5.1"},
	}

	out, err := Migrate(migrateSrc, plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "Baz") || strings.Contains(out, "baz body") {
		t.Errorf("removed question leaked into the output:\n%s", out)
	}
}

func TestMigrate_MismatchesCollected(t *testing.T) {
	plan := &Plan{
		Sections: []PlanSection{
			{Title: "Alpha", Questions: []string{"4.1", "4.1", "9.9"}},
		},
		Removed: []string{"5.1"},
	}

	out, err := Migrate(migrateSrc, plan)
	if err == nil {
		t.Fatal("expected a plan error")
	}
	if out != "" {
		t.Errorf("mismatched plan must produce no output, got %q", out)
	}

	var perr *PlanError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PlanError, got %T", err)
	}
	if len(perr.Unmapped) != 1 || perr.Unmapped[0] != "4.2" {
		t.Errorf("Unmapped = %v, want [4.2]", perr.Unmapped)
	}
	if len(perr.Missing) != 1 || perr.Missing[0] != "9.9" {
		t.Errorf("Missing = %v, want [9.9]", perr.Missing)
	}
	if len(perr.Duplicated) != 1 || perr.Duplicated[0] != "4.1" {
		t.Errorf("Duplicated = %v, want [4.1]", perr.Duplicated)
	}

	msg := perr.Error()
	for _, part := range []string{"unmapped questions: 4.2", "missing questions: 9.9", "duplicate mappings: 4.1"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q missing %q", msg, part)
		}
	}
}

func TestCheck_Valid(t *testing.T) {
	if err := Check(migrateSrc, validPlan()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSourceIDs(t *testing.T) {
	ids := SourceIDs(migrateSrc)
	want := []string{"4.1", "4.2", "5.1"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
