package tokenizer_test

import (
	"testing"

	"github.com/snxml/snxml/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_MinimalDocument(t *testing.T) {
	tokens := tokenizer.Tokenize("<user><id>1</id></user>")

	require.Len(t, tokens, 5)
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.OpenTag, Raw: "<user>"}, tokens[0])
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.OpenTag, Raw: "<id>"}, tokens[1])
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.Text, Raw: "1"}, tokens[2])
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.CloseTag, Raw: "</id>"}, tokens[3])
	assert.Equal(t, tokenizer.Token{Kind: tokenizer.CloseTag, Raw: "</user>"}, tokens[4])
}

func TestTokenize_WhitespaceOnlySpansDropped(t *testing.T) {
	tokens := tokenizer.Tokenize("<users>\n    <user>\n\t</user>\n</users>")

	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.True(t, tok.IsTag(), "only tags expected, got %q", tok.Raw)
	}
}

func TestTokenize_TextTrimmedButInternalWhitespaceKept(t *testing.T) {
	tokens := tokenizer.Tokenize("<name>  Ahmed   Ali  </name>")

	require.Len(t, tokens, 3)
	assert.Equal(t, "Ahmed   Ali", tokens[1].Raw)
}

func TestTokenize_UnterminatedTagDropsRemainder(t *testing.T) {
	tokens := tokenizer.Tokenize("<users><user")

	require.Len(t, tokens, 1)
	assert.Equal(t, "<users>", tokens[0].Raw)
}

func TestTokenize_TrailingTextWithoutTag(t *testing.T) {
	tokens := tokenizer.Tokenize("<id>1</id> trailing")

	require.Len(t, tokens, 4)
	assert.Equal(t, tokenizer.Text, tokens[3].Kind)
	assert.Equal(t, "trailing", tokens[3].Raw)
}

func TestTokenize_EmptyInput(t *testing.T) {
	assert.Empty(t, tokenizer.Tokenize(""))
	assert.Empty(t, tokenizer.Tokenize("   \n\t  "))
}

func TestTokenize_SelfClosingTreatedAsOpen(t *testing.T) {
	tokens := tokenizer.Tokenize(`<friend user_id="2"/>`)

	require.Len(t, tokens, 1)
	assert.Equal(t, tokenizer.OpenTag, tokens[0].Kind)
	assert.Equal(t, `<friend user_id="2"/>`, tokens[0].Raw)
}

func TestTokenName(t *testing.T) {
	tests := []struct {
		raw  string
		kind tokenizer.Kind
		want string
	}{
		{"<user>", tokenizer.OpenTag, "user"},
		{"</user>", tokenizer.CloseTag, "user"},
		{`<friend user_id="2">`, tokenizer.OpenTag, "friend"},
		{`<friend user_id="2"/>`, tokenizer.OpenTag, "friend"},
		{"hello", tokenizer.Text, ""},
	}

	for _, tt := range tests {
		tok := tokenizer.Token{Kind: tt.kind, Raw: tt.raw}
		assert.Equal(t, tt.want, tok.Name(), "raw=%q", tt.raw)
	}
}
