package document

import (
	"bytes"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// RenderHTML converts a markdown fragment to HTML. Used for the read API's
// rendered view; the raw text stays the persisted form.
func RenderHTML(fragment string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(fragment), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderHTML fills DescriptionHTML on every question so a browser form can
// show inline emphasis and code spans without shipping its own renderer.
func (d *Document) RenderHTML() error {
	for _, sec := range d.Sections {
		for _, q := range sec.Questions {
			html, err := RenderHTML(q.Description)
			if err != nil {
				return err
			}
			q.DescriptionHTML = html
		}
	}
	return nil
}
