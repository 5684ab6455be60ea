package snapshot

import (
	"encoding/json"
	"testing"
)

const sampleJSONHierarchy = `{
  "bounds": {"x": 0, "y": 0, "width": 1080, "height": 2400},
  "children": [
    {
      "id": "mock-element",
      "text": "Mock Element",
      "bounds": {"x": 100, "y": 200, "width": 200, "height": 50}
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	root, err := ParseJSON([]byte(sampleJSONHierarchy))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if root.Bounds != (Bounds{X: 0, Y: 0, Width: 1080, Height: 2400}) {
		t.Errorf("unexpected root bounds: %v", root.Bounds)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}

	child := root.Children[0]
	if child.ID != "mock-element" || child.Text != "Mock Element" {
		t.Errorf("unexpected child: %+v", child)
	}
	if child.Bounds.Center() != (Point{X: 200, Y: 225}) {
		t.Errorf("unexpected center: %v", child.Bounds.Center())
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte("{broken")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := ParseJSON([]byte(`["array"]`)); err == nil {
		t.Error("expected error for non-object root")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	// A marshaled tree parses back into an equal tree.
	orig := &Node{
		ID: "root",
		Bounds: Bounds{Width: 1080, Height: 2400},
		Children: []*Node{
			{ID: "ok", Text: "OK", Bounds: Bounds{Width: 100, Height: 40}},
		},
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	parsed, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if !orig.Equal(parsed) {
		t.Errorf("round trip mismatch: %+v vs %+v", orig, parsed)
	}
}

func TestXMLAndJSONEquivalence(t *testing.T) {
	xmlTree, err := ParseXML(`<hierarchy>
  <node resource-id="ok" text="OK" bounds="[0,0][100,40]"/>
</hierarchy>`)
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}

	jsonTree, err := ParseJSON([]byte(`{
  "id": "ok", "text": "OK",
  "bounds": {"x": 0, "y": 0, "width": 100, "height": 40}
}`))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if !xmlTree.Equal(jsonTree) {
		t.Errorf("equivalent hierarchies differ: %+v vs %+v", xmlTree, jsonTree)
	}
}
