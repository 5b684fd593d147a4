package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultCloseMessage is posted when no close message is configured.
const DefaultCloseMessage = "@${issue.user.login}: hello! :wave:\n\n" +
	"This issue is being automatically closed because it does not follow the issue template."

// Payload gives read-only access to the triggering event by dotted path.
type Payload interface {
	// Lookup returns the value at path (e.g. "issue.user.login").
	// ok is false when the path does not exist.
	Lookup(path string) (value string, ok bool)
}

// pathPattern matches a dotted lookup path such as issue.user.login or issue.labels.0.name.
var pathPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// segment is a piece of a parsed message template.
type segment struct {
	text   string
	path   string
	isPath bool
}

// parseMessage splits tmpl into literal text and ${path} expressions.
func parseMessage(tmpl string) ([]segment, error) {
	var segs []segment
	rest := tmpl
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			if rest != "" {
				segs = append(segs, segment{text: rest})
			}
			return segs, nil
		}
		if start > 0 {
			segs = append(segs, segment{text: rest[:start]})
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return nil, fmt.Errorf("unterminated expression at %q: %w", rest[start:], ErrInvalidMessageTemplate)
		}
		expr := strings.TrimSpace(rest[start+2 : start+end])
		if !pathPattern.MatchString(expr) {
			return nil, fmt.Errorf("expression %q is not a dotted path: %w", expr, ErrInvalidMessageTemplate)
		}
		segs = append(segs, segment{path: expr, isPath: true})
		rest = rest[start+end+1:]
	}
}

// ValidateMessage checks that tmpl only contains well-formed ${path} expressions.
func ValidateMessage(tmpl string) error {
	_, err := parseMessage(tmpl)
	return err
}

// RenderMessage interpolates ${path} expressions in tmpl with values from p.
// Paths missing from the payload render as the empty string.
func RenderMessage(tmpl string, p Payload) (string, error) {
	segs, err := parseMessage(tmpl)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, s := range segs {
		if !s.isPath {
			sb.WriteString(s.text)
			continue
		}
		if p == nil {
			continue
		}
		if v, ok := p.Lookup(s.path); ok {
			sb.WriteString(v)
		}
	}
	return sb.String(), nil
}

// MapPayload is a Payload backed by a flat map of dotted paths.
type MapPayload map[string]string

// Lookup returns the value stored under path.
func (m MapPayload) Lookup(path string) (string, bool) {
	v, ok := m[path]
	return v, ok
}
