package swarm

// Hit is a nearby pool member with precomputed spatial data, so the flocking
// pass never recomputes deltas or distances.
type Hit struct {
	Index  int
	DX, DY float32 // Delta from query origin to the neighbor
	DistSq float32
}

// MaxQueryResults caps neighbors returned per query so density spikes inside a
// tight pool cannot cause unbounded work.
const MaxQueryResults = 64

// SpatialGrid provides cell-based neighbor lookups over one pool's snapshot.
// The canvas is bounded, so out-of-range cells are simply clamped, not wrapped.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int // particle indices per cell
}

// NewSpatialGrid creates a grid covering a width x height canvas.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 32
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all entries from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a particle index at the given position.
func (g *SpatialGrid) Insert(idx int, x, y float32) {
	g.cells[g.cellIndex(x, y)] = append(g.cells[g.cellIndex(x, y)], idx)
}

// QueryRadiusInto appends pool members within radius of (x, y) to dst, skipping
// exclude, up to MaxQueryResults. Positions are read from the snapshot so every
// query within a tick sees the same pre-update state.
func (g *SpatialGrid) QueryRadiusInto(dst []Hit, x, y, radius float32, exclude int, snapshot []BoidState) []Hit {
	cellRadius := int(radius/g.cellSize) + 1
	centerCol := int(x / g.cellSize)
	centerRow := int(y / g.cellSize)
	radiusSq := radius * radius

	for dc := -cellRadius; dc <= cellRadius; dc++ {
		col := centerCol + dc
		if col < 0 || col >= g.cols {
			continue
		}
		for dr := -cellRadius; dr <= cellRadius; dr++ {
			row := centerRow + dr
			if row < 0 || row >= g.rows {
				continue
			}

			for _, idx := range g.cells[row*g.cols+col] {
				if idx == exclude {
					continue
				}
				n := &snapshot[idx]
				dx := n.X - x
				dy := n.Y - y
				distSq := dx*dx + dy*dy
				if distSq <= radiusSq {
					dst = append(dst, Hit{Index: idx, DX: dx, DY: dy, DistSq: distSq})
					if len(dst) >= MaxQueryResults {
						return dst
					}
				}
			}
		}
	}

	return dst
}

// cellIndex returns the flat index for a canvas position, clamped into range.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)

	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return row*g.cols + col
}
