package domain

import "strings"

// CheckboxState classifies a task-list marker.
type CheckboxState int

const (
	CheckboxNone     CheckboxState = iota // Not a task-list line
	CheckboxUnticked                      // "- [ ]"
	CheckboxTicked                        // "- [x]" or "- [X]"
)

// ClassifyCheckbox inspects a single line for a task-list marker.
//
// A task line is optional indentation and blockquote markers, a bullet
// ("-", "*" or "+"), whitespace, then a bracket. Bracket content of only
// whitespace is unticked, a single x or X is ticked, anything else is not a
// checkbox.
func ClassifyCheckbox(line string) CheckboxState {
	rest := strings.TrimLeft(line, " \t>")
	if rest == "" {
		return CheckboxNone
	}
	switch rest[0] {
	case '-', '*', '+':
	default:
		return CheckboxNone
	}
	rest = rest[1:]
	trimmed := strings.TrimLeft(rest, " \t")
	if len(trimmed) == len(rest) || !strings.HasPrefix(trimmed, "[") {
		return CheckboxNone
	}
	end := strings.IndexByte(trimmed, ']')
	if end < 0 {
		return CheckboxNone
	}
	content := trimmed[1:end]
	switch {
	case strings.TrimSpace(content) == "":
		return CheckboxUnticked
	case content == "x" || content == "X":
		return CheckboxTicked
	default:
		return CheckboxNone
	}
}

// CountUnticked returns the number of unticked task-list markers in markdown.
func CountUnticked(markdown string) int {
	n := 0
	for _, line := range splitLines(markdown) {
		if ClassifyCheckbox(line) == CheckboxUnticked {
			n++
		}
	}
	return n
}

// splitLines splits on "\n" and drops a trailing "\r" from each line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
