package geometry

import "testing"

func TestRectangleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rectangle
		expected bool
	}{
		{"disjoint", NewRectangle(0, 0, 8, 8), NewRectangle(16, 16, 8, 8), false},
		{"touching edges do not overlap", NewRectangle(0, 0, 8, 8), NewRectangle(8, 0, 8, 8), false},
		{"overlapping", NewRectangle(0, 0, 8, 8), NewRectangle(4, 4, 8, 8), true},
		{"contained", NewRectangle(0, 0, 16, 16), NewRectangle(4, 4, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDirection8XY(t *testing.T) {
	tests := []struct {
		dir    Direction8
		dx, dy int
	}{
		{Direction8East, 1, 0},
		{Direction8North, 0, -1},
		{Direction8West, -1, 0},
		{Direction8South, 0, 1},
		{Direction8None, 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.XY()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.XY() = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestGridMergeFootprintNeverWeakensFull(t *testing.T) {
	g, err := NewGrid(16, 16)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.MergeFootprint(LayerLow, 0, 0, 1, 1, ObstacleFull)
	g.MergeFootprint(LayerLow, 0, 0, 1, 1, ObstacleNone)

	if got := g.At(LayerLow, 0, 0); got != ObstacleFull {
		t.Errorf("At(0,0) = %v, want ObstacleFull (must not be weakened)", got)
	}
}

func TestGridBlocksPointHalfDiagonal(t *testing.T) {
	g, err := NewGrid(8, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(LayerLow, 0, 0, ObstacleTopRight)

	// Top-right triangle: cx >= cy blocks.
	if !g.BlocksPoint(LayerLow, 7, 0) {
		t.Error("expected (7,0) blocked in top-right half-diagonal cell")
	}
	if g.BlocksPoint(LayerLow, 0, 7) {
		t.Error("expected (0,7) free in top-right half-diagonal cell")
	}
}

func TestCellsOverlapping(t *testing.T) {
	r := NewRectangle(10, 10, 4, 4)
	minCX, minCY, maxCX, maxCY := CellsOverlapping(r)
	if minCX != 1 || minCY != 1 || maxCX != 1 || maxCY != 1 {
		t.Errorf("CellsOverlapping = (%d,%d,%d,%d), want (1,1,1,1)", minCX, minCY, maxCX, maxCY)
	}
}
