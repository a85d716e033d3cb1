package schema

// WalkFunc is called for each node with the names from the root down to it.
// Returning false skips the node's children.
type WalkFunc func(t Type, path []string, depth int) bool

// Walk visits t and its descendants depth-first in declaration order. A
// union's tag is visited before its options.
func Walk(t Type, fn WalkFunc) {
	walk(t, nil, 0, fn)
}

func walk(t Type, path []string, depth int, fn WalkFunc) {
	if t == nil {
		return
	}
	path = append(path[:len(path):len(path)], t.Name())
	if !fn(t, path, depth) {
		return
	}
	for _, c := range Children(t) {
		walk(c, path, depth+1, fn)
	}
}

// Children returns the direct children of t.
func Children(t Type) []Type {
	switch n := t.(type) {
	case *Struct:
		return n.Fields()
	case *Union:
		out := make([]Type, 0, len(n.options)+1)
		if n.tag != nil {
			out = append(out, n.tag)
		}
		return append(out, n.options...)
	case *Sequence:
		return []Type{n.elem}
	case *Vector:
		return []Type{n.elem}
	case *Pointer:
		if n.elem != nil {
			return []Type{n.elem}
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at t.
func Count(t Type) int {
	n := 0
	Walk(t, func(Type, []string, int) bool {
		n++
		return true
	})
	return n
}
