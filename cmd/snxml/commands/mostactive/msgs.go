package mostactive

// Message constants
const (
	MsgShort = "Show the user(s) following the most people"
	MsgLong  = `Most-active ranks users by how many people they follow (out-degree).
Ties break toward the smaller user id.`

	MsgExample = `  # The single most active user
  snxml most-active -i network.xml

  # Top five
  snxml most-active -i network.xml --top 5`

	MsgTitle = "Most active users"

	// Flag descriptions
	MsgFlagInput = "Input XML file (required)"
	MsgFlagTop   = "Number of users to show"
)
