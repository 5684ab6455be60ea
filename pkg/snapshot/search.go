package snapshot

// Predicate is a caller-supplied boolean test over a single node. It must be
// safe to invoke repeatedly and on arbitrary subtrees. A returned error aborts
// the search and propagates to the caller; it is never treated as "no match".
type Predicate func(*Node) (bool, error)

// FindFirst returns the first node in pre-order for which the predicate holds:
// a matching parent wins over its children, and an earlier subtree wins over
// later siblings. Returns nil when nothing matches.
func FindFirst(root *Node, match Predicate) (*Node, error) {
	if root == nil {
		return nil, nil
	}
	ok, err := match(root)
	if err != nil {
		return nil, err
	}
	if ok {
		return root, nil
	}
	for _, child := range root.Children {
		found, err := FindFirst(child, match)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, nil
}

// FindAll collects every matching node in pre-order. Children of a matching
// node are still tested, so a matching ancestor and its matching descendants
// all appear in the result.
func FindAll(root *Node, match Predicate) ([]*Node, error) {
	var result []*Node
	err := appendMatches(root, match, &result)
	return result, err
}

func appendMatches(n *Node, match Predicate, out *[]*Node) error {
	if n == nil {
		return nil
	}
	ok, err := match(n)
	if err != nil {
		return err
	}
	if ok {
		*out = append(*out, n)
	}
	for _, child := range n.Children {
		if err := appendMatches(child, match, out); err != nil {
			return err
		}
	}
	return nil
}
