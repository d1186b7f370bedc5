package pkgls

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Query and report on a package catalog"
	MsgRootLong     = "pkgls filters a catalog of package metadata by glob patterns,\ndescription text, and tags, and renders the result as a plain\nlisting, a reStructuredText document, or an HTML fragment."
	MsgListShort    = "List and search available packages"
	MsgListLong     = "List displays the packages in the catalog, optionally filtered by\ncase-insensitive glob patterns and tags."
	MsgFormatsShort = "List the available output formats"
	MsgTagsShort    = "List the tags known to the catalog"

	// Status messages
	MsgNoTags = "No tags found."

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSearchDesc = "Filtering will also search the description for a match"
	MsgFlagFormat     = "Format to be used to print the output"
	MsgFlagTags       = "Only show packages with any of the given tags"
	MsgFlagCatalog    = "Path to the catalog file"
)
