// Package geometry implements the frameless panel resize state machine:
// pointer positions are classified against the panel's edges, and a press on
// an edge starts a drag gesture that resizes the panel relative to the
// anchored rectangle.
package geometry

// Point is a pointer position in screen cells.
type Point struct {
	X int
	Y int
}

// Rect describes the panel rectangle in screen cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Edge is a bitmask of panel borders a pointer is near. Diagonal corners are
// the combination of two bits, which naturally wins over single-edge
// classification.
type Edge uint8

const (
	EdgeNone   Edge = 0
	EdgeTop    Edge = 1 << 0
	EdgeBottom Edge = 1 << 1
	EdgeLeft   Edge = 1 << 2
	EdgeRight  Edge = 1 << 3
)

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop | EdgeLeft:
		return "top+left"
	case EdgeTop | EdgeRight:
		return "top+right"
	case EdgeBottom | EdgeLeft:
		return "bottom+left"
	case EdgeBottom | EdgeRight:
		return "bottom+right"
	}
	return "invalid"
}

// Classify maps a pointer position to the edge(s) of the rectangle it is
// within threshold cells of. Positions outside the rectangle classify as
// EdgeNone.
func Classify(p Point, r Rect, threshold int) Edge {
	if !r.Contains(p) {
		return EdgeNone
	}
	localX := p.X - r.X
	localY := p.Y - r.Y
	var e Edge
	if localY < threshold {
		e |= EdgeTop
	}
	if localY > r.Height-1-threshold {
		e |= EdgeBottom
	}
	if localX < threshold {
		e |= EdgeLeft
	}
	if localX > r.Width-1-threshold {
		e |= EdgeRight
	}
	return e
}

// Hint is the advisory resize cursor shape derived from the edge under the
// pointer. It is cosmetic feedback only and never drives state transitions.
type Hint int

const (
	HintNone Hint = iota
	HintDiagonalMain
	HintDiagonalCross
	HintVertical
	HintHorizontal
)

// Glyph returns a one-cell representation for the status line.
func (h Hint) Glyph() string {
	switch h {
	case HintDiagonalMain:
		return "⤡"
	case HintDiagonalCross:
		return "⤢"
	case HintVertical:
		return "↕"
	case HintHorizontal:
		return "↔"
	}
	return ""
}

// HintFor maps an edge classification to its advisory cursor hint.
func HintFor(e Edge) Hint {
	top := e&EdgeTop != 0
	bottom := e&EdgeBottom != 0
	left := e&EdgeLeft != 0
	right := e&EdgeRight != 0
	switch {
	case (top && left) || (bottom && right):
		return HintDiagonalMain
	case (top && right) || (bottom && left):
		return HintDiagonalCross
	case top || bottom:
		return HintVertical
	case left || right:
		return HintHorizontal
	}
	return HintNone
}

// Mode is the gesture state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeResizing
)

// Controller owns a single drag-resize gesture at a time. The anchor pointer
// and rectangle are captured at press time and all deltas are computed
// against them, so intermediate moves never accumulate error.
type Controller struct {
	minWidth  int
	minHeight int
	threshold int

	mode          Mode
	edge          Edge
	anchorPointer Point
	anchorRect    Rect
}

// NewController builds a controller with the given size floor and edge
// threshold.
func NewController(minWidth, minHeight, threshold int) *Controller {
	return &Controller{
		minWidth:  minWidth,
		minHeight: minHeight,
		threshold: threshold,
	}
}

// Mode returns the current gesture state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Resizing reports whether a gesture is in progress.
func (c *Controller) Resizing() bool {
	return c.mode == ModeResizing
}

// Press attempts to start a resize gesture from a primary-button press. The
// gesture begins only when the pointer classifies to a panel edge; the edge
// and whether a gesture started are returned.
func (c *Controller) Press(p Point, r Rect) (Edge, bool) {
	if c.mode != ModeIdle {
		return c.edge, false
	}
	edge := Classify(p, r, c.threshold)
	if edge == EdgeNone {
		return EdgeNone, false
	}
	c.mode = ModeResizing
	c.edge = edge
	c.anchorPointer = p
	c.anchorRect = r
	return edge, true
}

// Move computes the updated rectangle for a pointer move during a gesture.
// The panel origin stays pinned to the anchor rectangle; only width and
// height track the delta, clamped to the minimum size. Resizing always acts
// on the bottom-right corner no matter which edge was grabbed.
func (c *Controller) Move(p Point) (Rect, bool) {
	if c.mode != ModeResizing {
		return Rect{}, false
	}
	dx := p.X - c.anchorPointer.X
	dy := p.Y - c.anchorPointer.Y
	width := c.anchorRect.Width + dx
	if width < c.minWidth {
		width = c.minWidth
	}
	height := c.anchorRect.Height + dy
	if height < c.minHeight {
		height = c.minHeight
	}
	return Rect{
		X:      c.anchorRect.X,
		Y:      c.anchorRect.Y,
		Width:  width,
		Height: height,
	}, true
}

// Release ends the gesture on primary-button release and reports the final
// rectangle for persistence. Releasing while idle is a no-op.
func (c *Controller) Release(p Point) (Rect, bool) {
	if c.mode != ModeResizing {
		return Rect{}, false
	}
	final, _ := c.Move(p)
	c.mode = ModeIdle
	c.edge = EdgeNone
	return final, true
}

// Hint derives the advisory cursor hint for an unpressed pointer move. It
// returns HintNone while a gesture is active; the gesture already owns the
// pointer.
func (c *Controller) Hint(p Point, r Rect) Hint {
	if c.mode != ModeIdle {
		return HintNone
	}
	return HintFor(Classify(p, r, c.threshold))
}
