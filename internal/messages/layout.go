package messages

// Messages for layout descriptor loading.
const (
	LayoutMissingFileFmt  = "could not read layout descriptor %s: %w"
	LayoutInvalidFmt      = "invalid layout descriptor %s: %w"
	LayoutUnknownKeysFmt  = "layout descriptor %s contains unrecognized keys: %w"
	LayoutMissingFieldFmt = "layout descriptor %s: %q must not be empty"
	LayoutBadNameFmt      = "layout descriptor %s: %q must not contain path separators"
	LayoutUpperNameFmt    = "layout descriptor %s: %q must be lowercase"
)
