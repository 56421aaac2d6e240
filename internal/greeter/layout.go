package greeter

// Cell is a grid position and span.
type Cell struct {
	Column, Row   int
	Width, Height int
}

// Grid cells for the main window's children. Both share column 0.
var (
	FeedbackCell = Cell{Column: 0, Row: 0, Width: 1, Height: 1}
	PasswordCell = Cell{Column: 0, Row: 1, Width: 1, Height: 1}
)

// LayoutContainer is the grid attached as the main window's only child.
type LayoutContainer struct {
	grid Grid
}

// NewLayoutContainer creates the grid with equal row and column spacing
// and attaches it to parent.
func NewLayoutContainer(tk Toolkit, spacing int, parent Window) *LayoutContainer {
	grid := tk.NewGrid()
	grid.SetSpacing(spacing, spacing)
	parent.SetChild(grid)
	return &LayoutContainer{grid: grid}
}

// Attach places child at cell.
func (l *LayoutContainer) Attach(child Widget, cell Cell) {
	l.grid.Attach(child, cell.Column, cell.Row, cell.Width, cell.Height)
}

// Grid returns the underlying grid.
func (l *LayoutContainer) Grid() Grid {
	return l.grid
}
