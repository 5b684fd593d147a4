package domain

import "strings"

// SplitFrontMatter separates a leading "---" delimited front matter block from
// the markdown that follows it. ok is false when content has no front matter,
// in which case body is content unchanged.
//
// Format:
//
//	---
//	name: Bug report
//	about: Create a report to help us improve
//	labels: bug, triage
//	---
//	## Describe the bug
func SplitFrontMatter(content string) (meta, body string, ok bool) {
	lines := splitLines(content)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			meta = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return meta, body, true
		}
	}
	// Unclosed block: treat the whole file as markdown
	return "", content, false
}

// ParseLabelList parses a label value written either as a YAML flow list
// ("[bug, triage]") or comma-separated ("bug, triage").
// Empty entries and duplicates are dropped.
func ParseLabelList(value string) []string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']' {
		value = value[1 : len(value)-1]
	}
	var labels []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		label := strings.Trim(strings.TrimSpace(part), `"'`)
		if label != "" && !seen[label] {
			labels = append(labels, label)
			seen[label] = true
		}
	}
	return labels
}
