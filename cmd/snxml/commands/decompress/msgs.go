package decompress

// Message constants
const (
	MsgShort = "Decompress a document"
	MsgLong  = `Decompress restores a document compressed with snxml compress. Files
without the snxml magic header are rejected.`

	MsgExample = `  # Restores network.xml next to the input
  snxml decompress -i network.xml.snxz

  # Explicit output path
  snxml decompress -i archive.snxz -o network.xml`

	// Flag descriptions
	MsgFlagInput  = "Compressed input file (required)"
	MsgFlagOutput = "Output file (default <input> without .snxz, else stdout)"
)
