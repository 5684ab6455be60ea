package snapshot

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON parses a JSON hierarchy into a snapshot tree. The expected shape
// is the one drivers emit for JSON dumps:
//
//	{"id": "...", "text": "...",
//	 "bounds": {"x": 0, "y": 0, "width": 1080, "height": 2400},
//	 "children": [...]}
func ParseJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid hierarchy JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("hierarchy JSON root must be an object")
	}
	return nodeFromJSON(root), nil
}

func nodeFromJSON(v gjson.Result) *Node {
	n := &Node{
		ID:   v.Get("id").String(),
		Text: v.Get("text").String(),
		Bounds: Bounds{
			X:      int(v.Get("bounds.x").Int()),
			Y:      int(v.Get("bounds.y").Int()),
			Width:  int(v.Get("bounds.width").Int()),
			Height: int(v.Get("bounds.height").Int()),
		},
	}
	v.Get("children").ForEach(func(_, child gjson.Result) bool {
		n.Children = append(n.Children, nodeFromJSON(child))
		return true
	})
	return n
}
