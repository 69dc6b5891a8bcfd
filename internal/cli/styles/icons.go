package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconTrash    = "\uf1f8" // trash
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database

	IconCard     = "\uf2d2" // window
	IconPin      = "\uf08d" // thumb-tack
	IconPlay     = "\uf04b" // play
	IconPause    = "\uf04c" // pause
	IconExpand   = "\uf065" // expand
	IconCalendar = "\uf073" // calendar
)

// Glyphs drawn on the canvas. These stay in the basic Unicode range so any
// terminal font can show them.
const (
	GlyphSettings = "⚙"
	GlyphClose    = "✕"
	GlyphPinned   = "●"
	GlyphUnpinned = "○"
	GlyphResize   = "◢"
	GlyphEllipsis = "…"
)
