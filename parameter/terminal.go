package parameter

import "time"

// Terminal host presentation
const (
	// TerminalRenderInterval paces screen redraws, independent of the simulation frame rate
	TerminalRenderInterval = 33 * time.Millisecond

	// TerminalCellAspect is the cell height/width ratio used by the projection
	TerminalCellAspect = 2.0

	// Pointer drags are reported in cells, scaled to pixels so camera sensitivity matches a mouse
	TerminalCellWidthPx  = 8.0
	TerminalCellHeightPx = 16.0

	// TerminalStatusDuration keeps a status message on screen
	TerminalStatusDuration = 3 * time.Second

	// TerminalStarCount is the size of the backdrop starfield
	TerminalStarCount = 240

	// TerminalStarSpread is the half-extent of the starfield cube
	TerminalStarSpread = 250.0
)
