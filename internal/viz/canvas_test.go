package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected top-left dot, got %U", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected bottom-right dot added, got %U", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-bounds set leaked into grid: %U", r)
			}
		}
	}
}

func TestCanvasDrawGlyph(t *testing.T) {
	c := NewCanvas(4, 4)

	c.DrawGlyph(5, 9, '▲')
	if c.Grid[2][2] != '▲' {
		t.Errorf("expected glyph at cell (2,2), got %U", c.Grid[2][2])
	}

	c.DrawGlyph(-1, 0, '▲')
	c.DrawGlyph(100, 100, '▲')
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.DrawGlyph(2, 2, '▓')

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("clear left %U behind", r)
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	s := c.String()

	if strings.Count(s, "\n") != 3 {
		t.Errorf("expected 3 rows, got %d", strings.Count(s, "\n"))
	}
}
