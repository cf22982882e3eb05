package parameter

// Terminal view
const (
	// CellsPerUnitX and CellsPerUnitZ scale world units to terminal cells; cells are
	// roughly twice as tall as wide
	CellsPerUnitX = 2.0
	CellsPerUnitZ = 1.0

	// HUDHeight is the number of status lines below the map
	HUDHeight = 3

	CharacterChar = '@'
	WallChar      = '█'
	BoxChar       = '▣'
	FloorChar     = '·'
	BorderChar    = '░'
)
