package commands

// Short messages (one-liners)
const (
	MsgRootShort = "A toolkit for social-network XML documents"
	MsgRootLong  = `snxml reads, reformats, validates and analyzes XML documents describing a
social network of users, posts and follower relationships.

Formatting and validation run on a purpose-built tokenizer, so malformed
documents are reported line by line instead of rejected outright.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagConfig  = "Config file (default is snxml.toml, then $XDG_CONFIG_HOME/snxml/snxml.toml)"

	// Group titles
	MsgGroupCore = "COMMANDS:"
	MsgGroupMisc = "MISC:"
)
