package validator_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/snxml/snxml/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(report *validator.Report) []validator.Kind {
	out := make([]validator.Kind, 0, len(report.Errors))
	for _, e := range report.Errors {
		out = append(out, e.Kind)
	}
	return out
}

func TestValidateString_WellFormedMinimalDocument(t *testing.T) {
	report := validator.ValidateString("<users><user><id>1</id><name>A</name></user></users>")

	assert.True(t, report.IsValid)
	assert.Zero(t, report.ErrorCount)
	assert.Empty(t, report.Errors)
}

func TestValidateString_EmptyInputIsValid(t *testing.T) {
	report := validator.ValidateString("")

	assert.True(t, report.IsValid)
	assert.Zero(t, report.ErrorCount)
}

func TestValidateString_WellFormedMultilineDocument(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"    <user>",
		"        <id>1</id>",
		"        <name>Ahmed Ali</name>",
		"        <followers>",
		"            <follower>",
		"                <id>2</id>",
		"            </follower>",
		"        </followers>",
		"    </user>",
		"    <user>",
		"        <id>2</id>",
		"        <name>Yasser Ahmed</name>",
		"    </user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	assert.True(t, report.IsValid, "errors: %v", report.Errors)
}

func TestValidateString_MalformedTagSyntax(t *testing.T) {
	report := validator.ValidateString("<users\n</users>")

	require.Equal(t, 2, report.ErrorCount)
	assert.Equal(t, validator.KindSyntax, report.Errors[0].Kind)
	assert.Equal(t, 1, report.Errors[0].Line)
	assert.Contains(t, report.Errors[0].Description, "missing closing '>'")
	// The orphaned </users> follows because line 1 was skipped.
	assert.Equal(t, validator.KindStructure, report.Errors[1].Kind)
}

func TestValidateString_MissingOpeningBracket(t *testing.T) {
	report := validator.ValidateString("users>")

	require.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, validator.KindSyntax, report.Errors[0].Kind)
	assert.Contains(t, report.Errors[0].Description, "missing opening '<'")
}

func TestValidateString_ClosingWithoutOpening(t *testing.T) {
	report := validator.ValidateString("</user>")

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.Equal(t, validator.KindStructure, err.Kind)
	assert.Equal(t, "Closing tag '</user>' without matching opening tag", err.Description)
}

func TestValidateString_MismatchedTags(t *testing.T) {
	report := validator.ValidateString("<a>\n<b>\n</a>")

	// The mismatch pops <b>, so <a> is additionally swept as unclosed.
	require.Equal(t, 2, report.ErrorCount)
	unclosed, mismatch := report.Errors[0], report.Errors[1]
	assert.Equal(t, "Unclosed tag '<a>'", unclosed.Description)
	assert.Equal(t, 1, unclosed.Line)
	assert.Equal(t, validator.KindStructure, mismatch.Kind)
	assert.Equal(t, "Mismatched tags: expected '</b>' but found '</a>'", mismatch.Description)
	assert.Equal(t, 3, mismatch.Line)
}

func TestValidateString_UnclosedTagCitesOpeningLine(t *testing.T) {
	report := validator.ValidateString("<a>\n<b></b>")

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.Equal(t, validator.KindStructure, err.Kind)
	assert.Equal(t, "Unclosed tag '<a>'", err.Description)
	assert.Equal(t, 1, err.Line)
}

func TestValidateString_DuplicateUserID(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"</user>",
		"<user>",
		"<id>1</id>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.Equal(t, validator.KindSemantic, err.Kind)
	assert.Equal(t, "Duplicate user ID '1'", err.Description)
	assert.Equal(t, 6, err.Line, "error lands on the second occurrence")
}

func TestValidateString_EmptyUserID(t *testing.T) {
	doc := "<users>\n<user>\n<id></id>\n</user>\n</users>"

	report := validator.ValidateString(doc)

	require.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, "Empty user ID", report.Errors[0].Description)
	assert.Equal(t, validator.KindSemantic, report.Errors[0].Kind)
}

func TestValidateString_EmptyNameAndBody(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"<name> </name>",
		"<posts>",
		"<post>",
		"<body></body>",
		"</post>",
		"</posts>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	require.Equal(t, 2, report.ErrorCount)
	assert.Equal(t, "Empty user name", report.Errors[0].Description)
	assert.Equal(t, 4, report.Errors[0].Line)
	assert.Equal(t, "Empty post body", report.Errors[1].Description)
	assert.Equal(t, 7, report.Errors[1].Line)
}

func TestValidateString_DanglingFollowerReference(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"<followers>",
		"<follower>",
		"<id>99</id>",
		"</follower>",
		"</followers>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.Equal(t, validator.KindSemantic, err.Kind)
	assert.Equal(t, "Invalid follower reference: user ID '99' does not exist", err.Description)
	assert.Equal(t, 6, err.Line)
}

func TestValidateString_CompactFollowerLineDanglingReference(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"<followers>",
		"<follower><id>99</id></follower>",
		"</followers>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.Equal(t, validator.KindSemantic, err.Kind)
	assert.Equal(t, "Invalid follower reference: user ID '99' does not exist", err.Description)
	assert.Equal(t, 5, err.Line)
}

func TestValidateString_CompactFollowerLineIsNotADuplicateUserID(t *testing.T) {
	// A follower id equal to an existing user id is a legitimate reference,
	// even when the <follower> element opens and closes on the same line.
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"<followers>",
		"<follower><id>2</id></follower>",
		"</followers>",
		"</user>",
		"<user>",
		"<id>2</id>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	assert.True(t, report.IsValid, "errors: %v", report.Errors)
}

func TestValidateString_ForwardFollowerReferenceIsValid(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",
		"<id>1</id>",
		"<followers>",
		"<follower>",
		"<id>2</id>", // user 2 is defined later in the document
		"</follower>",
		"</followers>",
		"</user>",
		"<user>",
		"<id>2</id>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	assert.True(t, report.IsValid, "errors: %v", report.Errors)
}

func TestValidateString_ErrorsSortedByLine(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user>",   // unclosed, reported at line 2
		"</wrong>", // mismatch at line 3
		"<name></name>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	require.NotEmpty(t, report.Errors)
	for i := 1; i < len(report.Errors); i++ {
		assert.GreaterOrEqual(t, report.Errors[i].Line, report.Errors[i-1].Line)
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	report := validator.ValidateFile(filepath.Join(t.TempDir(), "missing.xml"))

	require.Equal(t, 1, report.ErrorCount)
	err := report.Errors[0]
	assert.False(t, report.IsValid)
	assert.Equal(t, validator.KindFile, err.Kind)
	assert.Zero(t, err.Line)
	assert.Contains(t, err.Description, "File not found")
}

func TestValidateFile_MatchesValidateString(t *testing.T) {
	doc := "<users>\n<user>\n<id>1</id>\n</user>\n</users>"
	path := filepath.Join(t.TempDir(), "net.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	fromFile := validator.ValidateFile(path)
	fromString := validator.ValidateString(doc)

	assert.Equal(t, fromString, fromFile)
}

func TestValidateString_ConcurrentCallsAreIndependent(t *testing.T) {
	valid := "<users>\n<user>\n<id>1</id>\n</user>\n</users>"
	invalid := "<users>\n<user>\n</users>"

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.True(t, validator.ValidateString(valid).IsValid)
			} else {
				assert.False(t, validator.ValidateString(invalid).IsValid)
			}
		}(i)
	}
	wg.Wait()
}

func TestErrorString(t *testing.T) {
	err := validator.Error{Line: 7, Description: "Empty user ID", Kind: validator.KindSemantic}
	assert.Equal(t, "Line 7: Empty user ID", err.String())
}

func TestValidateString_MixedErrorKinds(t *testing.T) {
	doc := strings.Join([]string{
		"<users>",
		"<user",
		"<id>1</id>",
		"</user>",
		"</users>",
	}, "\n")

	report := validator.ValidateString(doc)

	assert.False(t, report.IsValid)
	assert.Contains(t, kinds(report), validator.KindSyntax)
}
