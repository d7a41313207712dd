package common

// Logical screen size used when game.yaml leaves width or height unset.
const (
	BaseWidth  = 800
	BaseHeight = 600

	// TileSize is used when game.yaml leaves tile_size unset.
	TileSize = 32
)
