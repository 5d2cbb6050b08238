package mostinfluencer

// Message constants
const (
	MsgShort = "Show the user(s) with the most followers"
	MsgLong  = `Most-influencer ranks users by follower count (in-degree). Ties break
toward the smaller user id.`

	MsgExample = `  # The single most followed user
  snxml most-influencer -i network.xml

  # Top five
  snxml most-influencer -i network.xml --top 5`

	MsgTitle = "Most influential users"

	// Flag descriptions
	MsgFlagInput = "Input XML file (required)"
	MsgFlagTop   = "Number of users to show"
)
