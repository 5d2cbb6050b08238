package jsonexport

// Message constants
const (
	MsgShort = "Export users, posts and followers as JSON"
	MsgLong  = `Json parses the document and emits one record per user with its id,
name, post bodies and follower ids, indented with two spaces.`

	MsgExample = `  # Print records to stdout
  snxml json -i network.xml

  # Write them to a file
  snxml json -i network.xml -o network.json`

	// Flag descriptions
	MsgFlagInput  = "Input XML file (required)"
	MsgFlagOutput = "Output file (default stdout)"
)
