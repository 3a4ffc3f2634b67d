// internal/cw/treedef.go
package cw

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed tree.yaml
var defaultTreeDef []byte

var (
	// ErrMalformedTree indicates the tree definition could not be parsed
	ErrMalformedTree = errors.New("malformed tree definition")
	// ErrInvalidValue indicates a node value that is not a single character
	ErrInvalidValue = errors.New("node value must be a single character")
	// ErrRootValue indicates the root node was given a character
	ErrRootValue = errors.New("root node must not have a value")
	// ErrDuplicateValue indicates a character that appears on more than one node
	ErrDuplicateValue = errors.New("character appears more than once")
)

// nodeDef is the on-disk form of a tree node.
type nodeDef struct {
	Value string   `yaml:"value"`
	Dit   *nodeDef `yaml:"dit"`
	Dah   *nodeDef `yaml:"dah"`
}

// DefaultTree builds the tree bundled with the binary.
func DefaultTree() (*Tree, error) {
	return ParseTree(defaultTreeDef)
}

// LoadTree builds a tree from a YAML definition file.
func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree definition: %w", err)
	}
	t, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTree builds a tree from a YAML definition.
// Each node is a mapping with a "value" and optional "dit" and "dah" child
// mappings. The root must have an empty value; any other node may leave its
// value empty to exist only as a step towards longer codes.
func ParseTree(data []byte) (*Tree, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root nodeDef
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTree, err)
	}
	if root.Value != "" {
		return nil, fmt.Errorf("%w, got %q", ErrRootValue, root.Value)
	}
	return build(&root)
}

type pending struct {
	def  *nodeDef
	idx  int
	code string
}

// build flattens the definition into an arena, validating as it goes.
func build(root *nodeDef) (*Tree, error) {
	t := &Tree{nodes: []node{{value: placeholder, dit: noChild, dah: noChild}}}
	seen := make(map[rune]string)
	var errs []error

	stack := []pending{{def: root, idx: 0}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.idx != 0 && p.def.Value != "" {
			r, size := utf8.DecodeRuneInString(p.def.Value)
			switch {
			case (r == utf8.RuneError && size == 1) || size != len(p.def.Value):
				errs = append(errs, fmt.Errorf("%w, got %q at %q", ErrInvalidValue, p.def.Value, p.code))
			case seen[r] != "":
				errs = append(errs, fmt.Errorf("%w: %q at %q and %q", ErrDuplicateValue, r, seen[r], p.code))
			default:
				seen[r] = p.code
				t.nodes[p.idx].value = r
			}
		}

		if p.def.Dah != nil {
			t.nodes[p.idx].dah = t.add()
			stack = append(stack, pending{def: p.def.Dah, idx: t.nodes[p.idx].dah, code: p.code + "-"})
		}
		if p.def.Dit != nil {
			t.nodes[p.idx].dit = t.add()
			stack = append(stack, pending{def: p.def.Dit, idx: t.nodes[p.idx].dit, code: p.code + "."})
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTree, errors.Join(errs...))
	}
	return t, nil
}

// add appends an empty node and returns its index.
func (t *Tree) add() int {
	t.nodes = append(t.nodes, node{value: placeholder, dit: noChild, dah: noChild})
	return len(t.nodes) - 1
}
