package verify

// Message constants
const (
	MsgShort = "Validate a document and report errors by line"
	MsgLong  = `Verify checks a document line by line: tag syntax, open/close pairing
across lines, unique non-empty user IDs, non-empty names and post
bodies, and follower references that point at existing users. All
errors are collected and reported in line order.

With --fix, a best-effort repaired document (orphan closing tags
dropped, unclosed tags closed) is formatted and written to the output.`

	MsgExample = `  # Report validation errors
  snxml verify -i network.xml

  # Repair and write the fixed document
  snxml verify -i network.xml --fix -o fixed.xml`

	// Flag descriptions
	MsgFlagInput  = "Input XML file (required)"
	MsgFlagOutput = "Output file for the repaired document (default stdout)"
	MsgFlagFix    = "Repair structural errors and emit the fixed document"
)
