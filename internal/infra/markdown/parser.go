// Package markdown extracts heading titles and fenced code blocks from
// markdown documents using goldmark.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure Parser implements the domain extraction ports.
var (
	_ domain.Outliner           = (*Parser)(nil)
	_ domain.CodeBlockExtractor = (*Parser)(nil)
)

// Parser parses GitHub flavored markdown.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// parse normalizes line endings and returns the document AST with its source.
func (p *Parser) parse(markdown string) (ast.Node, []byte) {
	source := []byte(strings.ReplaceAll(markdown, "\r\n", "\n"))
	return p.md.Parser().Parse(text.NewReader(source)), source
}

// ExtractTitles returns the text of every ATX and setext heading.
func (p *Parser) ExtractTitles(markdown string) domain.TitleSet {
	return domain.NewTitleSet(p.Headings(markdown)...)
}

// Headings returns heading titles in document order, duplicates included.
func (p *Parser) Headings(markdown string) []string {
	var titles []string
	if strings.TrimSpace(markdown) == "" {
		return titles
	}

	doc, source := p.parse(markdown)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if title := strings.TrimSpace(inlineText(h, source)); title != "" {
			titles = append(titles, title)
		}
		return ast.WalkSkipChildren, nil
	})
	return titles
}

// ExtractCodeBlocks returns every fenced code block in document order.
func (p *Parser) ExtractCodeBlocks(markdown string) []domain.CodeBlock {
	var blocks []domain.CodeBlock
	if markdown == "" {
		return blocks
	}

	doc, source := p.parse(markdown)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		blocks = append(blocks, domain.CodeBlock{
			Language: string(fcb.Language(source)),
			Code:     buf.String(),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// inlineText concatenates the literal text under n.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		case *ast.RawHTML:
			// Inline HTML such as <!-- comments --> is not part of the title
		default:
			sb.WriteString(inlineText(c, source))
		}
	}
	return sb.String()
}
