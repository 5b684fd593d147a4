package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMeta string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "with front matter",
			content:  "---\nname: Bug\nabout: Report\n---\n## Title\n",
			wantMeta: "name: Bug\nabout: Report",
			wantBody: "## Title\n",
			wantOK:   true,
		},
		{
			name:     "crlf",
			content:  "---\r\nname: Bug\r\n---\r\n## Title",
			wantMeta: "name: Bug",
			wantBody: "## Title",
			wantOK:   true,
		},
		{
			name:     "no front matter",
			content:  "## Title\n---\nmore",
			wantBody: "## Title\n---\nmore",
		},
		{
			name:     "unclosed",
			content:  "---\nname: Bug\n## Title",
			wantBody: "---\nname: Bug\n## Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, ok := SplitFrontMatter(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMeta, meta)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParseLabelList(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"[bug, triage]", []string{"bug", "triage"}},
		{"bug, triage, bug", []string{"bug", "triage"}},
		{`"needs info", 'bug'`, []string{"needs info", "bug"}},
		{"", nil},
		{"[]", nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabelList(tt.value))
		})
	}
}
