package mutual

// Message constants
const (
	MsgShort = "Find followers shared by a group of users"
	MsgLong  = `Mutual lists the users that follow every one of the given ids. Each id
must exist in the network.`

	MsgExample = `  # Who follows both user 1 and user 2?
  snxml mutual -i network.xml --ids 1,2`

	MsgTitleFormat = "Mutual followers of users %s"

	// Flag descriptions
	MsgFlagInput = "Input XML file (required)"
	MsgFlagIDs   = "Comma-separated user ids (at least two)"
)
