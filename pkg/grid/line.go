package grid

// Line rasterizes the straight line from a to b using Bresenham's
// integer-only algorithm and returns the inclusive cell sequence. The
// sequence starts at a, ends at b, consecutive cells differ by at most 1
// in each axis, and its length is max(|dx|,|dy|)+1.
func Line(a, b Cell) []Cell {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	cells := make([]Cell, 0, max(dx, dy)+1)
	x, y := a.X, a.Y
	err := dx - dy
	for {
		cells = append(cells, Cell{X: x, Y: y})
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
