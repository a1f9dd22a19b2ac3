package messages

// CLI command strings and user-facing errors.
const (
	RootUse   = "xkalamine"
	RootShort = "Manage custom XKB keyboard layouts"

	InstallUse   = "install <layout.toml>"
	InstallShort = "Register a layout in the XKB configuration"

	RemoveUse   = "remove <locale>/<variant>"
	RemoveShort = "Unregister a layout from the XKB configuration"

	ListUse   = "list [mask]"
	ListShort = "List registered layouts, optionally filtered by locale[/variant]"

	CleanUse   = "clean"
	CleanShort = "Drop obsolete attributes older releases wrote into the layout registry"

	PermissionHint = "Permission denied. Retry with sudo to modify the system-wide XKB configuration."

	RemoveBadArgFmt  = "expected <locale>/<variant>, got %q"
	ListNotInstalled = " (not installed)"
	DryRunNoChanges  = "No changes.\n"
	InstalledFmt     = "Installed %s/%s in %s\n"
	RemovedFmt       = "Removed %s/%s from %s\n"

	CustomSymbolsWarning = "A custom symbols file already exists; it may shadow the layout just installed.\n"
	X11SessionHintFmt    = "X11 sessions do not pick up user-scope layouts; run setxkbmap %s -variant %s or install with --system.\n"
	RegistryCleanedFmt   = "Cleaned %s\n"
)
