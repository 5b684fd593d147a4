package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Colors defines the color palette for reports.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains the lipgloss styles for reports.
type Styles struct {
	Header  lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Label   lipgloss.Style
	Detail  lipgloss.Style
	Missing lipgloss.Style
	Valid   lipgloss.Style
	Invalid lipgloss.Style
}

// DefaultStyles returns the default report styles.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Pass:    lipgloss.NewStyle().Foreground(Colors.Success),
		Fail:    lipgloss.NewStyle().Foreground(Colors.Error),
		Label:   lipgloss.NewStyle().Width(22),
		Detail:  lipgloss.NewStyle().Foreground(Colors.Muted),
		Missing: lipgloss.NewStyle().Foreground(Colors.Warning),
		Valid:   lipgloss.NewStyle().Bold(true).Foreground(Colors.Success),
		Invalid: lipgloss.NewStyle().Bold(true).Foreground(Colors.Error),
	}
}

// checkMark renders a pass/fail marker.
func (s Styles) checkMark(ok bool) string {
	if ok {
		return s.Pass.Render("✓")
	}
	return s.Fail.Render("✗")
}

// renderReport writes a human-readable verdict report.
func renderReport(w io.Writer, s Styles, subject string, v domain.Verdict) {
	var b strings.Builder

	b.WriteString(s.Header.Render("Checking "+subject) + "\n\n")

	titleDetail := ""
	if v.TitlesMatch {
		titleDetail = "matches " + v.MatchedTemplate
	}
	blockDetail := ""
	if v.InvalidBlocks > 0 {
		blockDetail = fmt.Sprintf("%d placeholder block(s)", v.InvalidBlocks)
	}
	boxDetail := ""
	if v.UntickedCount > 0 {
		boxDetail = fmt.Sprintf("%d unticked", v.UntickedCount)
	}

	rows := []struct {
		label  string
		detail string
		ok     bool
	}{
		{"Template sections", titleDetail, v.TitlesMatch},
		{"Code blocks filled", blockDetail, v.CodeBlocksValid},
		{"Checkboxes ticked", boxDetail, v.AllCheckboxesTicked},
	}
	for _, r := range rows {
		line := "  " + s.checkMark(r.ok) + " " + s.Label.Render(r.label)
		if r.detail != "" {
			line += s.Detail.Render(r.detail)
		}
		b.WriteString(line + "\n")
	}

	if !v.TitlesMatch && len(v.MissingTitles) > 0 {
		b.WriteString("\n" + s.Header.Render("Missing sections") + "\n")
		names := make([]string, 0, len(v.MissingTitles))
		for name := range v.MissingTitles {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString("  " + name + "\n")
			for _, title := range v.MissingTitles[name] {
				b.WriteString("    " + s.Missing.Render("- "+title) + "\n")
			}
		}
	}

	b.WriteString("\n")
	if v.IsValid() {
		b.WriteString(s.Valid.Render("Issue follows a template") + "\n")
	} else {
		b.WriteString(s.Invalid.Render("Issue does not follow any template") + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}

// verdictJSON is the machine-readable form of a verdict.
type verdictJSON struct {
	MissingTitles       map[string][]string `json:"missing_titles,omitempty"`
	Subject             string              `json:"subject"`
	MatchedTemplate     string              `json:"matched_template,omitempty"`
	InvalidBlocks       int                 `json:"invalid_code_blocks"`
	UntickedCount       int                 `json:"unticked_checkboxes"`
	Valid               bool                `json:"valid"`
	TitlesMatch         bool                `json:"titles_match"`
	CodeBlocksValid     bool                `json:"code_blocks_valid"`
	AllCheckboxesTicked bool                `json:"all_checkboxes_ticked"`
}

// writeReportJSON writes the verdict as indented JSON.
func writeReportJSON(w io.Writer, subject string, v domain.Verdict) error {
	out := verdictJSON{
		Subject:             subject,
		Valid:               v.IsValid(),
		TitlesMatch:         v.TitlesMatch,
		CodeBlocksValid:     v.CodeBlocksValid,
		AllCheckboxesTicked: v.AllCheckboxesTicked,
		MatchedTemplate:     v.MatchedTemplate,
		MissingTitles:       v.MissingTitles,
		InvalidBlocks:       v.InvalidBlocks,
		UntickedCount:       v.UntickedCount,
	}
	if len(out.MissingTitles) == 0 {
		out.MissingTitles = nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
