package draw

// Message constants
const (
	MsgShort = "Render the follower graph as Graphviz DOT"
	MsgLong  = `Draw emits the follower graph in Graphviz DOT format, one node per
user and one edge per follower relationship. Pipe it to dot to produce
an image.`

	MsgExample = `  # Render a PNG with Graphviz
  snxml draw -i network.xml | dot -Tpng -o network.png

  # Just write the DOT file
  snxml draw -i network.xml -o network.dot`

	// Flag descriptions
	MsgFlagInput  = "Input XML file (required)"
	MsgFlagOutput = "Output DOT file (default stdout)"
)
