package mini

// Message constants
const (
	MsgShort = "Minify a document to a single line"
	MsgLong  = `Mini strips all inter-tag whitespace and joins the document onto one
line. Text inside elements is trimmed but otherwise untouched, so
minifying an already minified document is a no-op.`

	MsgExample = `  # Print the minified document
  snxml mini -i network.xml

  # Write it to a file
  snxml mini -i network.xml -o network.min.xml`

	// Flag descriptions
	MsgFlagInput  = "Input XML file (required)"
	MsgFlagOutput = "Output file (default stdout)"
)
