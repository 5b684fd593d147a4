// Package templates loads issue templates from a directory.
package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure Source implements domain.TemplateSource.
var _ domain.TemplateSource = (*Source)(nil)

// frontMatter is the YAML header of a markdown issue template.
type frontMatter struct {
	Labels      yaml.Node `yaml:"labels"`
	Name        string    `yaml:"name"`
	About       string    `yaml:"about"`
	Description string    `yaml:"description"`
}

// HeadingLister lists heading titles in document order.
type HeadingLister interface {
	Headings(markdown string) []string
}

// Source reads *.md templates from a directory.
type Source struct {
	outline HeadingLister
	dir     string
}

// New creates a new Source for dir.
func New(dir string, outline HeadingLister) *Source {
	return &Source{dir: dir, outline: outline}
}

// Dir returns the template directory.
func (s *Source) Dir() string {
	return s.dir
}

// Load reads every .md file in the directory, sorted by file name.
func (s *Source) Load(ctx context.Context) ([]domain.Template, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read template directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), domain.TemplateFileExt) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	templates := make([]domain.Template, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tmpl, err := s.loadFile(name)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// loadFile parses a single template file.
func (s *Source) loadFile(name string) (domain.Template, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return domain.Template{}, fmt.Errorf("read template %s: %w", name, err)
	}

	meta, body, hasMeta := domain.SplitFrontMatter(string(data))
	var fm frontMatter
	if hasMeta {
		if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
			return domain.Template{}, fmt.Errorf("template %s: %w: %w", name, domain.ErrInvalidFrontMatter, err)
		}
	}

	tmpl := domain.NewTemplate(fm.Name, name, s.outline.Headings(body))
	tmpl.About = fm.About
	if tmpl.About == "" {
		tmpl.About = fm.Description
	}
	tmpl.Labels = parseLabels(&fm.Labels)
	return tmpl, nil
}

// parseLabels accepts either a YAML sequence or a comma-separated scalar.
func parseLabels(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.SequenceNode:
		var labels []string
		if err := n.Decode(&labels); err != nil {
			return nil
		}
		return labels
	case yaml.ScalarNode:
		return domain.ParseLabelList(n.Value)
	default:
		return nil
	}
}
