package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubMarkdown returns canned extraction results regardless of input.
type stubMarkdown struct {
	titles TitleSet
	blocks []CodeBlock
}

func (s stubMarkdown) ExtractTitles(string) TitleSet        { return s.titles }
func (s stubMarkdown) ExtractCodeBlocks(string) []CodeBlock { return s.blocks }

func TestChecker_Check(t *testing.T) {
	bug := NewTemplate("Bug", "bug.md", []string{"Describe the bug", "Logs"})
	templates := []Template{bug}

	tests := []struct {
		name            string
		body            string
		md              stubMarkdown
		wantTitles      bool
		wantBlocks      bool
		wantCheckboxes  bool
		wantValid       bool
		wantMatched     string
		wantInvalidBlks int
	}{
		{
			name: "conforming body",
			body: "- [x] searched",
			md: stubMarkdown{
				titles: NewTitleSet("Describe the bug", "Logs"),
				blocks: []CodeBlock{{Code: "def foo(): pass\n"}},
			},
			wantTitles:     true,
			wantBlocks:     true,
			wantCheckboxes: true,
			wantValid:      true,
			wantMatched:    "Bug",
		},
		{
			name: "missing title",
			md: stubMarkdown{
				titles: NewTitleSet("Describe the bug"),
			},
			wantTitles:     false,
			wantBlocks:     true,
			wantCheckboxes: true,
		},
		{
			name: "one placeholder block invalidates all",
			md: stubMarkdown{
				titles: NewTitleSet("Describe the bug", "Logs"),
				blocks: []CodeBlock{{Code: "ok\n"}, {Code: "<placeholder>\n"}, {Code: "fine\n"}},
			},
			wantTitles:      true,
			wantBlocks:      false,
			wantCheckboxes:  true,
			wantMatched:     "Bug",
			wantInvalidBlks: 1,
		},
		{
			name: "unticked checkbox",
			body: "- [x] one\n- [ ] two",
			md: stubMarkdown{
				titles: NewTitleSet("Describe the bug", "Logs"),
			},
			wantTitles:     true,
			wantBlocks:     true,
			wantCheckboxes: false,
			wantMatched:    "Bug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(tt.md, tt.md)

			v := c.Check(tt.body, templates)

			assert.Equal(t, tt.wantTitles, v.TitlesMatch)
			assert.Equal(t, tt.wantBlocks, v.CodeBlocksValid)
			assert.Equal(t, tt.wantCheckboxes, v.AllCheckboxesTicked)
			assert.Equal(t, tt.wantValid, v.IsValid())
			assert.Equal(t, tt.wantMatched, v.MatchedTemplate)
			assert.Equal(t, tt.wantInvalidBlks, v.InvalidBlocks)
		})
	}
}

func TestChecker_Check_ReportsMissingTitles(t *testing.T) {
	md := stubMarkdown{titles: NewTitleSet("A")}
	c := NewChecker(md, md)

	v := c.Check("", []Template{
		NewTemplate("One", "one.md", []string{"A", "B"}),
		NewTemplate("Two", "two.md", []string{"C"}),
	})

	assert.False(t, v.TitlesMatch)
	assert.Equal(t, []string{"B"}, v.MissingTitles["One"])
	assert.Equal(t, []string{"C"}, v.MissingTitles["Two"])
}

func TestChecker_Check_NoTemplates(t *testing.T) {
	md := stubMarkdown{titles: NewTitleSet("A")}
	c := NewChecker(md, md)

	v := c.Check("", nil)

	assert.False(t, v.TitlesMatch)
	assert.False(t, v.IsValid())
}
