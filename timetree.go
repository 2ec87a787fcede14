package unifrac

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// millionYears converts timetree ages, stored in years, to branch lengths.
const millionYears = 1_000_000

// ageTree is the part of a timetree.Tree read by FromTimeTree.
type ageTree interface {
	Root() int
	Children(id int) []int
	Age(id int) int64
	IsTerm(id int) bool
	Taxon(id int) string
}

var _ ageTree = (*timetree.Tree)(nil)

// FromTimeTree copies a time-calibrated tree into a Topology. The branch
// length of a node is its parent's age minus its own, in million years.
func FromTimeTree(t *timetree.Tree) (*Topology, error) {
	if t == nil {
		return nil, fmt.Errorf("unifrac: nil time tree: %w", ErrInvalidTree)
	}
	return fromAgeTree(t)
}

func fromAgeTree(t ageTree) (*Topology, error) {
	top := NewTopology()
	root := t.Root()
	top.SetTaxon(top.Root(), t.Taxon(root))

	type frame struct {
		src, id int
	}
	stack := []frame{{src: root, id: top.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		age := t.Age(f.src)
		for _, c := range t.Children(f.src) {
			length := float64(age-t.Age(c)) / millionYears
			id, err := top.Add(f.id, t.Taxon(c), length)
			if err != nil {
				return nil, err
			}
			stack = append(stack, frame{src: c, id: id})
		}
	}
	return top, nil
}
