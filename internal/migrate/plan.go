// Package migrate regenerates a questionnaire document from a declarative
// restructuring plan: questions are regrouped under new section titles,
// every section and question is renumbered, and removed ids are dropped.
// Question bodies are carried over verbatim.
package migrate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the restructuring map. Sections are emitted in order; each
// absorbs the listed old question ids in order. Removed ids are dropped on
// purpose — every other source id must be claimed by exactly one section.
// Title, Preamble and Postscript are optional framing text for the
// regenerated document.
type Plan struct {
	Title      string        `yaml:"title"`
	Preamble   string        `yaml:"preamble"`
	Sections   []PlanSection `yaml:"sections"`
	Removed    []string      `yaml:"removed"`
	Postscript string        `yaml:"postscript"`
}

// PlanSection is one new section: its title and the old question ids it
// absorbs, in the order they should appear.
type PlanSection struct {
	Title     string   `yaml:"title"`
	Questions []string `yaml:"questions"`
}

// LoadPlan reads a plan from a YAML file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if len(p.Sections) == 0 {
		return nil, fmt.Errorf("plan %s maps no sections", path)
	}
	return &p, nil
}

// MappedCount is the number of question ids the plan places.
func (p *Plan) MappedCount() int {
	n := 0
	for _, sec := range p.Sections {
		n += len(sec.Questions)
	}
	return n
}

func (p *Plan) removedSet() map[string]bool {
	set := make(map[string]bool, len(p.Removed))
	for _, id := range p.Removed {
		set[id] = true
	}
	return set
}
