package format

// Message constants
const (
	MsgShort = "Reformat a document with canonical indentation"
	MsgLong  = `Format rewrites a document so every tag sits on its own line at an
indentation matching its depth. Leaf elements short enough to fit the
width limit stay on one line; longer text is word-wrapped one level
deeper. Malformed input is formatted as far as the tokenizer can read.`

	MsgExample = `  # Print the formatted document
  snxml format -i network.xml

  # Write it back to a file, two-space indent
  snxml format -i network.xml -o pretty.xml --indent "  "`

	// Flag descriptions
	MsgFlagInput    = "Input XML file (required)"
	MsgFlagOutput   = "Output file (default stdout)"
	MsgFlagIndent   = "Indentation unit"
	MsgFlagMaxWidth = "Width limit for inline leaf elements"
)
