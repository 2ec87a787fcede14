package unifrac

import (
	"fmt"

	"github.com/evolbioinfo/gotree/tree"
)

// FromGotree copies a gotree tree, for example one read with
// gotree/io/newick, into a Topology. The gotree root becomes the root and
// node names become taxa. Every non-root node must have a branch length.
func FromGotree(t *tree.Tree) (*Topology, error) {
	if t == nil || t.Root() == nil {
		return nil, fmt.Errorf("unifrac: nil gotree tree: %w", ErrInvalidTree)
	}

	type frame struct {
		node *tree.Node
		prev *tree.Node
		id   int
	}

	top := NewTopology()
	root := t.Root()
	top.SetTaxon(top.Root(), root.Name())

	stack := []frame{{node: root, id: top.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range f.node.Edges() {
			child := e.Right()
			if child == f.node {
				child = e.Left()
			}
			if child == f.prev {
				continue
			}
			// gotree stores an absent length as -1.
			length := e.Length()
			if length < 0 {
				return nil, fmt.Errorf("unifrac: node %q: %w", child.Name(), ErrMissingBranchLength)
			}
			id, err := top.Add(f.id, child.Name(), length)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame{node: child, prev: f.node, id: id})
		}
	}
	return top, nil
}
