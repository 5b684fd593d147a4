package domain

// CodeBlock is a fenced code block found in a markdown document.
type CodeBlock struct {
	Language string // Info string language, empty if none
	Code     string // Raw content lines, each terminated by "\n"
}

// Placeholders inserted by the issue template scaffolding.
const (
	PlaceholderCode  = "<placeholder>"
	PlaceholderPaste = "<-- Paste here -->"
)

// placeholderDenylist holds every exact content that counts as an unfilled block.
// Blocks carry one trailing newline per line, so each placeholder is listed
// bare and with the single newline the generator puts before the closing fence.
var placeholderDenylist = map[string]struct{}{
	"":                      {},
	PlaceholderCode:         {},
	PlaceholderCode + "\n":  {},
	PlaceholderPaste:        {},
	PlaceholderPaste + "\n": {},
}

// IsPlaceholder reports whether code is empty or exactly a template placeholder.
// Matching is by exact string; surrounding text makes the block valid.
func IsPlaceholder(code string) bool {
	_, ok := placeholderDenylist[code]
	return ok
}
