package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconImage    = "\uf1c5" // image file
	IconFile     = "\uf15b" // file
	IconLink     = "\uf0c1" // link
	IconPin      = "\uf08d" // thumb-tack
	IconClock    = "\uf017" // clock
	IconCursor   = "\uf054" // chevron-right
)
