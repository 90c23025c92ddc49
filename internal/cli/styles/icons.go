package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config

	// UI
	IconCursor = "\uf054" // chevron-right
	IconPane   = "\uf0db" // columns
	IconMenu   = "\uf0c9" // bars
)
