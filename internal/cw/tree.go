// internal/cw/tree.go
package cw

import "slices"

// noChild marks an absent dit or dah branch.
const noChild = -1

// placeholder is the value of the root and of nodes that exist only to
// reach longer codes. It is never a translation result.
const placeholder rune = 0

// node is one entry of the tree arena. dit and dah index into Tree.nodes.
type node struct {
	value rune
	dit   int
	dah   int
}

// Tree is the Morse translation tree.
// Left branch = dit, right branch = dah; the path from the root to a node is
// the Morse code of its value. Nodes are stored in a flat arena with the root
// at index 0. A Tree is never modified after construction, so it can be
// shared between goroutines without locking.
type Tree struct {
	nodes []node
}

// Encode returns the dit/dah path for r, or false if r is not in the tree.
// The search is depth-first and tries the dit branch before the dah branch.
func (t *Tree) Encode(r rune) ([]Symbol, bool) {
	if r == placeholder || len(t.nodes) == 0 {
		return nil, false
	}
	path, ok := t.search(0, r, make([]Symbol, 0, 8))
	if !ok {
		return nil, false
	}
	return slices.Clone(path), true
}

// search is shallow (bounded by the tree depth), so it recurses.
func (t *Tree) search(i int, r rune, path []Symbol) ([]Symbol, bool) {
	n := t.nodes[i]
	if n.value == r {
		return path, true
	}
	if n.dit != noChild {
		if p, ok := t.search(n.dit, r, append(path, Dit)); ok {
			return p, true
		}
	}
	if n.dah != noChild {
		if p, ok := t.search(n.dah, r, append(path, Dah)); ok {
			return p, true
		}
	}
	return nil, false
}

// Decode follows path from the root and returns the character it ends on.
// It returns false if the path contains a boundary symbol, steps into a
// missing branch, or ends on a node with no character.
func (t *Tree) Decode(path []Symbol) (rune, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	i := 0
	for _, sym := range path {
		switch sym {
		case Dit:
			i = t.nodes[i].dit
		case Dah:
			i = t.nodes[i].dah
		default:
			return 0, false
		}
		if i == noChild {
			return 0, false
		}
	}
	if v := t.nodes[i].value; v != placeholder {
		return v, true
	}
	return 0, false
}

// MaxLength returns the number of symbols in the longest path of the tree.
func (t *Tree) MaxLength() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.depth(0)
}

func (t *Tree) depth(i int) int {
	n := t.nodes[i]
	d := 0
	if n.dit != noChild {
		d = max(d, 1+t.depth(n.dit))
	}
	if n.dah != noChild {
		d = max(d, 1+t.depth(n.dah))
	}
	return d
}

// Len returns the number of characters in the tree.
func (t *Tree) Len() int {
	count := 0
	for _, n := range t.nodes {
		if n.value != placeholder {
			count++
		}
	}
	return count
}

// Walk calls fn for every character in the tree, depth-first with dit
// branches first, until fn returns false. The path slice is reused between
// calls; fn must copy it to keep it.
func (t *Tree) Walk(fn func(r rune, path []Symbol) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(0, make([]Symbol, 0, 8), fn)
}

func (t *Tree) walk(i int, path []Symbol, fn func(rune, []Symbol) bool) bool {
	n := t.nodes[i]
	if n.value != placeholder && !fn(n.value, path) {
		return false
	}
	if n.dit != noChild && !t.walk(n.dit, append(path, Dit), fn) {
		return false
	}
	if n.dah != noChild && !t.walk(n.dah, append(path, Dah), fn) {
		return false
	}
	return true
}
