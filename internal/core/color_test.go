package core

import "testing"

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  Color
	}{
		{0, ColorTileEmpty},
		{2, ColorTile2},
		{4, ColorTile4},
		{128, ColorTile128},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{3, ColorTileSuper},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestTileValueRoundTrip(t *testing.T) {
	for v := 2; v <= 2048; v *= 2 {
		got, ok := TileColor(v).TileValue()
		if !ok || got != v {
			t.Errorf("TileColor(%d).TileValue() = %d, %v", v, got, ok)
		}
	}

	if _, ok := ColorTileSuper.TileValue(); ok {
		t.Error("ColorTileSuper should not map to a single value")
	}
	if _, ok := ColorFrame.TileValue(); ok {
		t.Error("ColorFrame is not a tile slot")
	}
	if ColorFrame.IsTile() || !ColorTileSuper.IsTile() {
		t.Error("IsTile misclassifies slots")
	}
}
