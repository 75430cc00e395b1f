package geometry

import "testing"

const threshold = 3

func TestClassifyCorners(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 20, Height: 20}
	cases := []struct {
		name string
		p    Point
		want Edge
	}{
		{"top-left inside threshold", Point{threshold - 1, threshold - 1}, EdgeTop | EdgeLeft},
		{"interior beyond threshold", Point{threshold + 1, threshold + 1}, EdgeNone},
		{"top-right", Point{19, 0}, EdgeTop | EdgeRight},
		{"bottom-left", Point{0, 19}, EdgeBottom | EdgeLeft},
		{"bottom-right", Point{19, 19}, EdgeBottom | EdgeRight},
		{"top only", Point{10, 1}, EdgeTop},
		{"bottom only", Point{10, 18}, EdgeBottom},
		{"left only", Point{1, 10}, EdgeLeft},
		{"right only", Point{18, 10}, EdgeRight},
		{"outside rect", Point{25, 25}, EdgeNone},
	}
	for _, tc := range cases {
		if got := Classify(tc.p, r, threshold); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestClassifyHonorsRectOffset(t *testing.T) {
	r := Rect{X: 5, Y: 4, Width: 20, Height: 20}
	if got := Classify(Point{5, 4}, r, threshold); got != EdgeTop|EdgeLeft {
		t.Fatalf("expected offset top-left corner, got %v", got)
	}
	if got := Classify(Point{15, 14}, r, threshold); got != EdgeNone {
		t.Fatalf("expected offset interior to be none, got %v", got)
	}
}

func TestHintForMapsEdges(t *testing.T) {
	cases := []struct {
		edge Edge
		want Hint
	}{
		{EdgeTop | EdgeLeft, HintDiagonalMain},
		{EdgeBottom | EdgeRight, HintDiagonalMain},
		{EdgeTop | EdgeRight, HintDiagonalCross},
		{EdgeBottom | EdgeLeft, HintDiagonalCross},
		{EdgeTop, HintVertical},
		{EdgeBottom, HintVertical},
		{EdgeLeft, HintHorizontal},
		{EdgeRight, HintHorizontal},
		{EdgeNone, HintNone},
	}
	for _, tc := range cases {
		if got := HintFor(tc.edge); got != tc.want {
			t.Fatalf("edge %v: expected hint %v, got %v", tc.edge, tc.want, got)
		}
	}
}

func TestPressOnlyStartsOnEdges(t *testing.T) {
	c := NewController(10, 6, threshold)
	r := Rect{Width: 30, Height: 20}
	if edge, started := c.Press(Point{15, 10}, r); started {
		t.Fatalf("expected interior press to be ignored, got edge %v", edge)
	}
	if c.Resizing() {
		t.Fatal("expected controller to stay idle")
	}
	edge, started := c.Press(Point{29, 19}, r)
	if !started || edge != EdgeBottom|EdgeRight {
		t.Fatalf("expected bottom-right gesture, got %v started=%v", edge, started)
	}
	if c.Mode() != ModeResizing {
		t.Fatal("expected resizing mode after edge press")
	}
}

func TestMoveResizesFromAnchor(t *testing.T) {
	c := NewController(10, 6, threshold)
	r := Rect{X: 2, Y: 1, Width: 30, Height: 20}
	if _, ok := c.Move(Point{0, 0}); ok {
		t.Fatal("expected move to be ignored while idle")
	}
	c.Press(Point{31, 20}, r)

	got, ok := c.Move(Point{36, 24})
	if !ok {
		t.Fatal("expected move to produce a rect")
	}
	want := Rect{X: 2, Y: 1, Width: 35, Height: 24}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Shrinking stops at the minimum size; the origin never moves.
	got, _ = c.Move(Point{-50, -50})
	want = Rect{X: 2, Y: 1, Width: 10, Height: 6}
	if got != want {
		t.Fatalf("expected clamp to minimum %v, got %v", want, got)
	}
}

func TestMoveGrabbingTopLeftStillResizesBottomRight(t *testing.T) {
	c := NewController(10, 6, threshold)
	r := Rect{X: 0, Y: 0, Width: 30, Height: 20}
	c.Press(Point{0, 0}, r)
	got, _ := c.Move(Point{4, 3})
	want := Rect{X: 0, Y: 0, Width: 34, Height: 23}
	if got != want {
		t.Fatalf("expected origin pinned with size delta, got %v", got)
	}
}

func TestReleaseEndsGestureAndReportsRect(t *testing.T) {
	c := NewController(10, 6, threshold)
	r := Rect{Width: 30, Height: 20}
	if _, ok := c.Release(Point{0, 0}); ok {
		t.Fatal("expected release while idle to be a no-op")
	}
	c.Press(Point{29, 19}, r)
	final, ok := c.Release(Point{33, 22})
	if !ok {
		t.Fatal("expected release to end the gesture")
	}
	if final.Width != 34 || final.Height != 23 {
		t.Fatalf("unexpected final rect %v", final)
	}
	if c.Resizing() {
		t.Fatal("expected idle mode after release")
	}
	// A second gesture starts cleanly.
	if _, started := c.Press(Point{0, 0}, final); !started {
		t.Fatal("expected a new gesture after release")
	}
}

func TestHintSuppressedDuringGesture(t *testing.T) {
	c := NewController(10, 6, threshold)
	r := Rect{Width: 30, Height: 20}
	if h := c.Hint(Point{0, 10}, r); h != HintHorizontal {
		t.Fatalf("expected horizontal hint, got %v", h)
	}
	c.Press(Point{0, 10}, r)
	if h := c.Hint(Point{0, 10}, r); h != HintNone {
		t.Fatalf("expected no hint while resizing, got %v", h)
	}
}
