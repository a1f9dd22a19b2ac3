package messages

// Messages for the XKB registration core.
const (
	XKBWriteFileFmt  = "could not write to file %s: %w"
	XKBReadFileFmt   = "could not read file %s: %w"
	XKBParseRulesFmt = "could not parse %s: %w"

	// XKBRulesFormatFmt indicates a layout node without exactly one variantList.
	XKBRulesFormatFmt  = "unexpected xml format in %s"
	XKBNoLayoutListFmt = "no layoutList element in %s"

	XKBCreateDirFmt = "could not create directory %s: %w"

	XKBProgressFileFmt   = "... %s\n"
	XKBProgressAddFmt    = "      + %s/%s\n"
	XKBProgressRemoveFmt = "      - %s/%s\n"
)
