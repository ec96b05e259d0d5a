package core

// Color is a semantic color slot for a screen cell.
// The platform layer decides what each slot looks like.
type Color uint8

// Interface slots.
const (
	ColorDefault Color = iota
	ColorFrame
	ColorTitle
	ColorText
	ColorOverlay
)

// Tile slots. ColorTile2 through ColorTile2048 are consecutive, one per power of two.
const (
	ColorTileEmpty Color = iota + 16
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the slot for a tile value.
// Values above 2048, and anything that is not a power of two, share ColorTileSuper.
func TileColor(value int) Color {
	if value == 0 {
		return ColorTileEmpty
	}
	slot := ColorTile2
	for v := 2; v <= 2048; v *= 2 {
		if v == value {
			return slot
		}
		slot++
	}
	return ColorTileSuper
}

// IsTile reports whether c is one of the tile slots.
func (c Color) IsTile() bool {
	return c >= ColorTileEmpty && c <= ColorTileSuper
}

// TileValue returns the tile value a slot stands for.
// ColorTileEmpty maps to 0; ColorTileSuper and non-tile slots report false.
func (c Color) TileValue() (int, bool) {
	if c == ColorTileEmpty {
		return 0, true
	}
	if c < ColorTile2 || c > ColorTile2048 {
		return 0, false
	}
	return 2 << (c - ColorTile2), true
}
