package suggest

// Message constants
const (
	MsgShort = "Suggest users to follow"
	MsgLong  = `Suggest recommends accounts for a user, scored by how many of the
user's followings already follow the candidate. The user itself and
accounts already followed are excluded.`

	MsgExample = `  # Up to five suggestions for user 1
  snxml suggest -i network.xml --id 1

  # Only the best match
  snxml suggest -i network.xml --id 1 --limit 1`

	// Flag descriptions
	MsgFlagInput = "Input XML file (required)"
	MsgFlagID    = "User id to compute suggestions for (required)"
	MsgFlagLimit = "Maximum number of suggestions (default from config)"
)
