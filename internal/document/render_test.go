package document

import (
	"strings"
	"testing"
)

func TestRenderHTML_Fragment(t *testing.T) {
	html, err := RenderHTML("choose **wisely**")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "<strong>wisely</strong>") {
		t.Errorf("expected bold markup, got %q", html)
	}
}

func TestRenderHTML_Document(t *testing.T) {
	doc := Parse(sampleDoc)
	if err := doc.RenderHTML(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, sec := range doc.Sections {
		for _, q := range sec.Questions {
			if q.Description != "" && q.DescriptionHTML == "" {
				t.Errorf("question %s has no rendered description", q.ID)
			}
		}
	}
	q := doc.Sections[0].Questions[0]
	if !strings.Contains(q.DescriptionHTML, "<p>") {
		t.Errorf("expected paragraph markup, got %q", q.DescriptionHTML)
	}
}
