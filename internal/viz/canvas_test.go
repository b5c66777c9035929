package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected sub-pixel (0,0) to be lit")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("expected cleared cell, got %q", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// Must not panic and must not light anything.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	for i, row := range c.Grid {
		for j, r := range row {
			if r != 0x2800 {
				t.Errorf("cell (%d,%d): expected empty, got %q", i, j, r)
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	for x := 0; x < c.SubWidth(); x++ {
		for y := 0; y < c.SubHeight(); y++ {
			c.Set(x, y)
		}
	}

	c.Clear()

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("expected empty cell after Clear, got %q", r)
			}
		}
	}
}

func TestCanvasSubDimensions(t *testing.T) {
	c := NewCanvas(10, 5)
	if c.SubWidth() != 20 {
		t.Errorf("expected sub-width 20, got %d", c.SubWidth())
	}
	if c.SubHeight() != 20 {
		t.Errorf("expected sub-height 20, got %d", c.SubHeight())
	}
}

func countLit(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)

	if countLit(c) == 0 {
		t.Error("expected circle to light cells")
	}

	// Interior stays empty: the cell holding the center itself.
	if c.Grid[5][10] != 0x2800 {
		t.Error("expected circle interior to stay empty")
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(20, 20, 6)

	if c.Grid[5][10] == 0x2800 {
		t.Error("expected filled circle to cover its center")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected line start to be lit")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("expected line end to be lit")
	}
}
