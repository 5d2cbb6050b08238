// Package tokenizer splits raw social-network XML into a flat stream of
// tag and text tokens. It is deliberately not an XML parser: no attributes
// are interpreted, no entities are expanded, and malformed input degrades
// gracefully instead of failing.
package tokenizer

import (
	"strings"
)

// Kind classifies a token.
type Kind int

const (
	// OpenTag is an opening tag such as <user>. Self-closing tags are
	// reported as OpenTag as well; downstream consumers treat them as
	// unmatched parents.
	OpenTag Kind = iota
	// CloseTag is a closing tag such as </user>.
	CloseTag
	// Text is a non-empty text run between tags, trimmed of surrounding
	// whitespace.
	Text
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case OpenTag:
		return "open"
	case CloseTag:
		return "close"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Token is the atomic unit produced by Tokenize. For tags Raw includes the
// angle brackets and any attributes verbatim; for text Raw is the trimmed
// run. Internal whitespace of text runs is preserved.
type Token struct {
	Kind Kind
	Raw  string
}

// IsTag reports whether the token is an opening or closing tag.
func (t Token) IsTag() bool {
	return t.Kind == OpenTag || t.Kind == CloseTag
}

// Name returns the tag name for tag tokens ("user" for <user> or </user>),
// ignoring attributes. For text tokens it returns "".
func (t Token) Name() string {
	if !t.IsTag() {
		return ""
	}
	name := strings.TrimPrefix(t.Raw, "<")
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimSuffix(name, ">")
	name = strings.TrimSuffix(name, "/")
	if i := strings.IndexAny(name, " \t\n"); i >= 0 {
		name = name[:i]
	}
	return name
}

// Tokenize scans s left to right and returns its tokens in document order.
// An unterminated tag at the end of input is dropped together with the
// remainder of the string. Whitespace-only text spans are discarded, which
// is what makes re-tokenizing pretty-printed output safe.
func Tokenize(s string) []Token {
	var tokens []Token
	i := 0
	for i < len(s) {
		if s[i] == '<' {
			j := strings.IndexByte(s[i:], '>')
			if j < 0 {
				// No terminator before end of input. Fail soft.
				break
			}
			raw := s[i : i+j+1]
			kind := OpenTag
			if strings.HasPrefix(raw, "</") {
				kind = CloseTag
			}
			tokens = append(tokens, Token{Kind: kind, Raw: raw})
			i += j + 1
			continue
		}

		j := strings.IndexByte(s[i:], '<')
		if j < 0 {
			j = len(s) - i
		}
		text := strings.TrimSpace(s[i : i+j])
		if text != "" {
			tokens = append(tokens, Token{Kind: Text, Raw: text})
		}
		i += j
	}
	return tokens
}
