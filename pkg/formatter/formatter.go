// Package formatter rebuilds tokenized social-network XML as indented,
// line-wrapped text, and provides the inverse operation of collapsing a
// document onto a single dense line.
package formatter

import (
	"strings"

	"github.com/snxml/snxml/pkg/logging"
	"github.com/snxml/snxml/pkg/tokenizer"
)

const (
	// DefaultIndent is one indentation unit per nesting level.
	DefaultIndent = "    "
	// DefaultMaxWidth is both the inline threshold for leaf nodes and the
	// wrap width for overflowing leaf text.
	DefaultMaxWidth = 80
)

// Options controls indentation and wrapping. The zero value is replaced by
// the defaults.
type Options struct {
	// Indent is the string emitted once per nesting level.
	Indent string
	// MaxWidth is the maximum length of a leaf's normalized text before it
	// is wrapped, and the width wrapped lines are filled to.
	MaxWidth int
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	return o
}

// Format tokenizes s and reconstructs it with canonical indentation.
// Leaf nodes (open, text, close) render on one line when their normalized
// text fits in MaxWidth; longer text is word-wrapped one level deeper than
// the opening tag, with the closing tag back at the opening tag's level.
func Format(s string, opts Options) string {
	opts = opts.withDefaults()
	tokens := tokenizer.Tokenize(s)
	logger := logging.GetLogger("formatter")
	logger.Trace().Int("tokens", len(tokens)).Msg("formatting document")

	var lines []string
	level := 0

	for k := 0; k < len(tokens); k++ {
		tok := tokens[k]
		switch {
		case tok.Kind == tokenizer.CloseTag:
			if level > 0 {
				level--
			}
			lines = append(lines, indent(opts.Indent, level)+tok.Raw)

		case tok.Kind == tokenizer.OpenTag:
			if isLeaf(tokens, k) {
				text := normalizeSpace(tokens[k+1].Raw)
				if len(text) <= opts.MaxWidth {
					lines = append(lines, indent(opts.Indent, level)+tok.Raw+text+tokens[k+2].Raw)
				} else {
					lines = append(lines, indent(opts.Indent, level)+tok.Raw)
					for _, wrapped := range wrapWords(text, opts.MaxWidth) {
						lines = append(lines, indent(opts.Indent, level+1)+wrapped)
					}
					lines = append(lines, indent(opts.Indent, level)+tokens[k+2].Raw)
				}
				k += 2
				continue
			}
			lines = append(lines, indent(opts.Indent, level)+tok.Raw)
			level++

		default:
			// Bare text outside a leaf pattern. Well-nested input never
			// produces this, but unbalanced input can.
			lines = append(lines, indent(opts.Indent, level)+strings.TrimSpace(tok.Raw))
		}
	}

	return strings.Join(lines, "\n")
}

// Minify tokenizes s and concatenates the raw tokens with no separators.
// Because the tokenizer drops whitespace-only spans, Minify is idempotent.
func Minify(s string) string {
	var b strings.Builder
	for _, tok := range tokenizer.Tokenize(s) {
		b.WriteString(tok.Raw)
	}
	return b.String()
}

// isLeaf reports whether the token at k starts an open-text-close run.
func isLeaf(tokens []tokenizer.Token, k int) bool {
	return k+2 < len(tokens) &&
		tokens[k+1].Kind == tokenizer.Text &&
		tokens[k+2].Kind == tokenizer.CloseTag
}

// normalizeSpace collapses all internal whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// wrapWords greedily fills lines up to width without splitting words. A
// single word longer than width becomes its own line, unsplit.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func indent(unit string, level int) string {
	return strings.Repeat(unit, level)
}
