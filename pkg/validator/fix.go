package validator

import (
	"strings"

	"github.com/snxml/snxml/pkg/tokenizer"
)

// Fix rewrites content into a well-nested document: orphaned closing tags
// are dropped, a mismatched closing tag first closes everything opened
// after its partner, and tags still open at end of input are closed in
// reverse order. Unterminated tags disappear with the tokenizer's fail-soft
// behavior. The result re-validates with no structure errors; semantic
// defects (duplicate ids, dangling references) are left alone, since
// inventing users is not the fixer's call.
//
// The returned report is the validation of the original input, so callers
// can show what was wrong alongside the corrected text.
func Fix(content string) (string, *Report) {
	report := ValidateString(content)
	if report.IsValid {
		return content, report
	}

	var b strings.Builder
	var stack []string

	closeTop := func() {
		b.WriteString("</" + stack[len(stack)-1] + ">")
		stack = stack[:len(stack)-1]
	}

	for _, tok := range tokenizer.Tokenize(content) {
		switch {
		case tok.Kind == tokenizer.Text:
			b.WriteString(tok.Raw)

		case tok.Kind == tokenizer.OpenTag:
			b.WriteString(tok.Raw)
			if !strings.HasSuffix(tok.Raw, "/>") {
				stack = append(stack, tok.Name())
			}

		default: // closing tag
			depth := lastIndex(stack, tok.Name())
			if depth < 0 {
				// Orphaned closing tag: drop it.
				continue
			}
			// Close everything opened after the matching tag, then the
			// tag itself.
			for len(stack) > depth {
				closeTop()
			}
		}
	}

	for len(stack) > 0 {
		closeTop()
	}

	return b.String(), report
}

func lastIndex(stack []string, name string) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return i
		}
	}
	return -1
}
