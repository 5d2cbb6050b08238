package validator

import "fmt"

// Kind categorizes a validation error.
type Kind string

const (
	// KindSyntax marks a malformed tag missing one of its delimiters.
	KindSyntax Kind = "syntax"
	// KindStructure marks unclosed, mismatched, or orphaned closing tags.
	KindStructure Kind = "structure"
	// KindSemantic marks duplicate identifiers, empty required fields, and
	// dangling follower references.
	KindSemantic Kind = "semantic"
	// KindFile marks an unreadable input resource. File errors carry line 0.
	KindFile Kind = "file"
)

// Error is a single validation defect. Defects are data, never Go errors:
// the validator returns every defect it finds in the report instead of
// aborting on the first one.
type Error struct {
	Line        int
	Description string
	Kind        Kind
}

// String renders the error in the "Line N: description" form the CLI prints.
func (e Error) String() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Description)
}

// Report is the result of one validation call. Errors are sorted by line
// ascending; errors on the same line keep discovery order.
type Report struct {
	IsValid    bool
	ErrorCount int
	Errors     []Error
}

func newReport(errs []Error) *Report {
	return &Report{
		IsValid:    len(errs) == 0,
		ErrorCount: len(errs),
		Errors:     errs,
	}
}
