package domain

// Outliner extracts heading titles from markdown.
type Outliner interface {
	// ExtractTitles returns every heading title in the document.
	ExtractTitles(markdown string) TitleSet
}

// CodeBlockExtractor extracts fenced code blocks from markdown.
type CodeBlockExtractor interface {
	// ExtractCodeBlocks returns the fenced blocks in document order.
	ExtractCodeBlocks(markdown string) []CodeBlock
}

// Verdict is the result of checking an issue body against templates.
// Fields are ordered to minimize memory padding.
type Verdict struct {
	MatchedTemplate     string              // Name of the first fully satisfied template
	MissingTitles       map[string][]string // Template name -> titles absent from the body
	InvalidBlocks       int                 // Number of empty or placeholder code blocks
	UntickedCount       int                 // Number of unticked checkboxes
	TitlesMatch         bool
	CodeBlocksValid     bool
	AllCheckboxesTicked bool
}

// IsValid reports whether the body conforms to the templates.
func (v Verdict) IsValid() bool {
	return v.TitlesMatch && v.CodeBlocksValid && v.AllCheckboxesTicked
}

// Checker decides whether an issue body conforms to at least one template.
type Checker struct {
	outline Outliner
	blocks  CodeBlockExtractor
}

// NewChecker creates a new Checker.
func NewChecker(outline Outliner, blocks CodeBlockExtractor) *Checker {
	return &Checker{outline: outline, blocks: blocks}
}

// Check evaluates body against templates. It never fails; malformed input
// yields a verdict leaning invalid.
func (c *Checker) Check(body string, templates []Template) Verdict {
	titles := c.outline.ExtractTitles(body)

	v := Verdict{MissingTitles: make(map[string][]string)}
	if t, ok := SatisfiesAny(templates, titles); ok {
		v.TitlesMatch = true
		v.MatchedTemplate = t.Name
	} else {
		for _, t := range templates {
			v.MissingTitles[t.Name] = t.MissingTitles(titles)
		}
	}

	for _, b := range c.blocks.ExtractCodeBlocks(body) {
		if IsPlaceholder(b.Code) {
			v.InvalidBlocks++
		}
	}
	v.CodeBlocksValid = v.InvalidBlocks == 0

	v.UntickedCount = CountUnticked(body)
	v.AllCheckboxesTicked = v.UntickedCount == 0

	return v
}
