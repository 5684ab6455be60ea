package snapshot

import "testing"

func button(id, text string, b Bounds) *Node {
	return &Node{ID: id, Text: text, Bounds: b}
}

func TestBoundsCenter(t *testing.T) {
	tests := []struct {
		bounds   Bounds
		expected Point
	}{
		{Bounds{X: 0, Y: 0, Width: 100, Height: 40}, Point{X: 50, Y: 20}},
		{Bounds{X: 100, Y: 200, Width: 200, Height: 80}, Point{X: 200, Y: 240}},
		{Bounds{X: 0, Y: 0, Width: 1, Height: 1}, Point{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		got := tt.bounds.Center()
		if got != tt.expected {
			t.Errorf("Center(%v) = %+v, want %+v", tt.bounds, got, tt.expected)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 100, Height: 50}

	if !b.Contains(10, 10) {
		t.Error("expected top-left corner to be contained")
	}
	if !b.Contains(50, 30) {
		t.Error("expected interior point to be contained")
	}
	if b.Contains(110, 30) {
		t.Error("expected right edge to be exclusive")
	}
	if b.Contains(9, 30) {
		t.Error("expected point left of bounds to be excluded")
	}
}

func TestNodeEqual(t *testing.T) {
	base := func() *Node {
		return &Node{
			ID: "root",
			Children: []*Node{
				button("ok", "OK", Bounds{X: 0, Y: 0, Width: 100, Height: 40}),
				button("cancel", "Cancel", Bounds{X: 0, Y: 50, Width: 100, Height: 40}),
			},
		}
	}

	a := base()
	b := base()
	if !a.Equal(b) {
		t.Error("expected identical trees to be equal")
	}

	b = base()
	b.Children[0].Text = "Okay"
	if a.Equal(b) {
		t.Error("expected text change to break equality")
	}

	b = base()
	b.Children[1].Bounds.Y = 60
	if a.Equal(b) {
		t.Error("expected bounds change to break equality")
	}

	b = base()
	b.Children = b.Children[:1]
	if a.Equal(b) {
		t.Error("expected child count change to break equality")
	}

	b = base()
	b.Children[0], b.Children[1] = b.Children[1], b.Children[0]
	if a.Equal(b) {
		t.Error("expected child order to matter")
	}

	if a.Equal(nil) {
		t.Error("expected non-nil != nil")
	}
	var n *Node
	if !n.Equal(nil) {
		t.Error("expected nil == nil")
	}
}

func TestNodeCount(t *testing.T) {
	root := &Node{
		Children: []*Node{
			{Children: []*Node{{}, {}}},
			{},
		},
	}
	if got := root.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}

	var n *Node
	if got := n.Count(); got != 0 {
		t.Errorf("nil Count() = %d, want 0", got)
	}
}

func TestNodeDescribe(t *testing.T) {
	n := button("ok", "OK", Bounds{X: 0, Y: 0, Width: 100, Height: 40})
	got := n.Describe()
	if got != `id="ok" text="OK" [0,0][100,40]` {
		t.Errorf("Describe() = %q", got)
	}

	var nilNode *Node
	if nilNode.Describe() != "<nil>" {
		t.Error("expected <nil> for nil node")
	}
}
