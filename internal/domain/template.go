package domain

import (
	"slices"
	"strings"
)

// TemplateFileExt is the suffix of files treated as issue templates.
const TemplateFileExt = ".md"

// DefaultTemplateDir is where GitHub looks for issue templates.
const DefaultTemplateDir = ".github/ISSUE_TEMPLATE"

// TitleSet is a set of heading titles found in a markdown document.
type TitleSet map[string]struct{}

// NewTitleSet builds a set from the given titles. Duplicates collapse.
func NewTitleSet(titles ...string) TitleSet {
	s := make(TitleSet, len(titles))
	for _, t := range titles {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether title is in the set.
func (s TitleSet) Has(title string) bool {
	_, ok := s[title]
	return ok
}

// Sorted returns the titles in lexical order.
func (s TitleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Template is an issue template and the section titles it requires.
// Templates are built once by a TemplateSource and never mutated.
// Fields are ordered to minimize memory padding.
type Template struct {
	Name   string   // Front matter name, or file name without extension
	File   string   // File name inside the template directory
	About  string   // Front matter about/description
	Labels []string // Front matter labels
	titles []string
}

// NewTemplate creates a template requiring the given titles.
// Titles keep their first-seen order; duplicates are dropped.
func NewTemplate(name, file string, titles []string) Template {
	seen := make(map[string]struct{}, len(titles))
	uniq := make([]string, 0, len(titles))
	for _, t := range titles {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	if name == "" {
		name = strings.TrimSuffix(file, TemplateFileExt)
	}
	return Template{Name: name, File: file, titles: uniq}
}

// Titles returns a copy of the required section titles in document order.
func (t Template) Titles() []string {
	return slices.Clone(t.titles)
}

// MissingTitles returns the required titles absent from have.
func (t Template) MissingTitles(have TitleSet) []string {
	var missing []string
	for _, title := range t.titles {
		if !have.Has(title) {
			missing = append(missing, title)
		}
	}
	return missing
}

// SatisfiedBy reports whether every required title is in have.
func (t Template) SatisfiedBy(have TitleSet) bool {
	for _, title := range t.titles {
		if !have.Has(title) {
			return false
		}
	}
	return true
}

// SatisfiesAny reports whether have satisfies at least one template fully,
// and returns the first such template. An empty template list is never satisfied.
func SatisfiesAny(templates []Template, have TitleSet) (Template, bool) {
	for _, t := range templates {
		if t.SatisfiedBy(have) {
			return t, true
		}
	}
	return Template{}, false
}
