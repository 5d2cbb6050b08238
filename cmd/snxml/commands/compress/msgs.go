package compress

// Message constants
const (
	MsgShort = "Compress a document"
	MsgLong  = `Compress deflates a document and prefixes it with the snxml magic
header so decompress can reject files it did not produce.`

	MsgExample = `  # Writes network.xml.snxz next to the input
  snxml compress -i network.xml

  # Explicit output path
  snxml compress -i network.xml -o archive.snxz`

	// Flag descriptions
	MsgFlagInput  = "Input XML file (required)"
	MsgFlagOutput = "Output file (default <input>.snxz)"
)
