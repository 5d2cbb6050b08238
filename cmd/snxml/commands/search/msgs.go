package search

// Message constants
const (
	MsgShort = "Search posts by word or topic"
	MsgLong  = `Search finds posts whose body contains a word (case-insensitive) or
whose topic list contains a topic (exact match). When both are given a
post must match both to be returned.`

	MsgExample = `  # Posts mentioning "economy"
  snxml search -i network.xml -w economy

  # Posts tagged with the "sports" topic
  snxml search -i network.xml -t sports`

	// Flag descriptions
	MsgFlagInput = "Input XML file (required)"
	MsgFlagWord  = "Word to look for in post bodies"
	MsgFlagTopic = "Topic to look for in post topic lists"
)
