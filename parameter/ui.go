package parameter

// Terminal layout
const (
	// HUDRows is the number of rows reserved at the bottom of the screen
	HUDRows = 2

	// CellAspect compensates for terminal cells being twice as tall as wide
	CellAspect = 2.0

	// MinProjectedRadius is the radius in rows below which a sphere draws as a single cell
	MinProjectedRadius = 0.3
)

// Logging defaults
const (
	LogLevel = "info"
	LogDir   = "logs"
	LogFile  = "planet-defense.log"
)
