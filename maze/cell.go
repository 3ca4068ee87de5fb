package maze

// CellType classifies a single grid position.
type CellType int

const (
	// Path is an open cell the search may walk through.
	Path CellType = iota
	// Wall is an impassable cell.
	Wall
	// Entrance is the cell the search starts from. There is exactly one.
	Entrance
	// Exit is the cell the search is looking for.
	Exit
)

// String returns a human-readable name for the cell type.
func (t CellType) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Entrance:
		return "entrance"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Coordinate identifies a grid cell by column (X) and row (Y).
// It is a comparable value type and can be used as a map key.
type Coordinate struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// ManhattanTo returns |ΔX| + |ΔY| between c and other.
func (c Coordinate) ManhattanTo(other Coordinate) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Cell holds the search state of one grid position.
// Type and Coordinate are fixed at construction; Parent and Cost are
// updated destructively by the search as shorter paths are discovered.
type Cell struct {
	// Type classifies the cell. Wall cells are never traversable.
	Type CellType
	// Coordinate is the cell's own position in the grid.
	Coordinate Coordinate
	// Parent is the predecessor on the best known entrance-to-cell path.
	// It is meaningful only after the search has reached the cell and
	// holds the zero Coordinate until then.
	Parent Coordinate
	// Heuristic is the Manhattan distance to the exit, fixed once the
	// exit location is known.
	Heuristic int
	// Cost is the best known number of edges from the entrance,
	// 0 until the search first reaches the cell.
	Cost int
}

// Traversable reports whether the search may occupy the cell.
func (c *Cell) Traversable() bool {
	return c.Type != Wall
}
