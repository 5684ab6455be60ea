package snapshot

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// ParseXML parses an Android UI hierarchy dump into a snapshot tree.
// Supports both formats:
// - UIAutomator dump: uses class name as element tag (e.g., <android.widget.FrameLayout>)
// - Appium format: uses <node> elements
// When the hierarchy has several top-level elements they are wrapped in a
// synthetic root so callers always get a single tree.
func ParseXML(xmlData string) (*Node, error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlData))

	var roots []*Node
	foundHierarchy := false
	var parseElement func() (*Node, error)

	parseElement = func() (*Node, error) {
		for {
			token, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			switch t := token.(type) {
			case xml.StartElement:
				// Skip the hierarchy wrapper element
				if t.Name.Local == "hierarchy" {
					foundHierarchy = true
					continue
				}

				node := &Node{}
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "text":
						node.Text = attr.Value
					case "resource-id":
						node.ID = attr.Value
					case "bounds":
						node.Bounds = parseBounds(attr.Value)
					}
				}

				// Parse children recursively
				for {
					child, err := parseElement()
					if err != nil || child == nil {
						break
					}
					node.Children = append(node.Children, child)
				}

				return node, nil

			case xml.EndElement:
				return nil, nil // end of current element
			}
		}
	}

	var parseErr error
	for {
		node, err := parseElement()
		if err != nil {
			// io.EOF is expected at end of document
			if err.Error() != "EOF" {
				parseErr = err
			}
			break
		}
		if node != nil {
			roots = append(roots, node)
		}
	}

	if parseErr != nil && len(roots) == 0 {
		return nil, parseErr
	}
	if !foundHierarchy {
		return nil, fmt.Errorf("invalid page source: no hierarchy element found")
	}

	switch len(roots) {
	case 0:
		return &Node{}, nil
	case 1:
		return roots[0], nil
	default:
		return &Node{Children: roots}, nil
	}
}

// parseBounds parses Android bounds string "[x1,y1][x2,y2]" to Bounds.
func parseBounds(s string) Bounds {
	s = strings.ReplaceAll(s, "][", ",")
	s = strings.Trim(s, "[]")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}
	}

	x1, _ := strconv.Atoi(parts[0])
	y1, _ := strconv.Atoi(parts[1])
	x2, _ := strconv.Atoi(parts[2])
	y2, _ := strconv.Atoi(parts[3])

	return Bounds{
		X:      x1,
		Y:      y1,
		Width:  x2 - x1,
		Height: y2 - y1,
	}
}
