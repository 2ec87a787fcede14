package unifrac

import "fmt"

// Tree is a rooted phylogeny with integer node IDs. Every node except the
// root has exactly one parent. Len reports the length of the branch that
// joins a node to its parent; it is ignored for the root.
//
// The method set follows github.com/js-arias/timetree so that adapters
// stay thin.
type Tree interface {
	Root() int
	Children(id int) []int
	Len(id int) float64
	IsTerm(id int) bool
	Taxon(id int) string
}

// Topology is a minimal arena-backed Tree. Node 0 is the root; nodes are
// appended with Add and never removed.
type Topology struct {
	parent   []int
	children [][]int
	length   []float64
	taxon    []string
}

// NewTopology returns a Topology holding only an unnamed root.
func NewTopology() *Topology {
	return &Topology{
		parent:   []int{-1},
		children: [][]int{nil},
		length:   []float64{0},
		taxon:    []string{""},
	}
}

// Add appends a child of parent with the given name and branch length and
// returns its ID.
func (t *Topology) Add(parent int, taxon string, length float64) (int, error) {
	if parent < 0 || parent >= len(t.parent) {
		return -1, fmt.Errorf("unifrac: parent %d: %w", parent, ErrInvalidTree)
	}
	id := len(t.parent)
	t.parent = append(t.parent, parent)
	t.children = append(t.children, nil)
	t.length = append(t.length, length)
	t.taxon = append(t.taxon, taxon)
	t.children[parent] = append(t.children[parent], id)
	return id, nil
}

// SetTaxon renames a node.
func (t *Topology) SetTaxon(id int, taxon string) {
	t.taxon[id] = taxon
}

func (t *Topology) Root() int             { return 0 }
func (t *Topology) Children(id int) []int { return t.children[id] }
func (t *Topology) Len(id int) float64    { return t.length[id] }
func (t *Topology) IsTerm(id int) bool    { return len(t.children[id]) == 0 }
func (t *Topology) Taxon(id int) string   { return t.taxon[id] }
func (t *Topology) Parent(id int) int     { return t.parent[id] }
func (t *Topology) NumNodes() int         { return len(t.parent) }
