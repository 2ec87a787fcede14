package unifrac

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// IndexedNode describes one tree node in postorder.
type IndexedNode struct {
	// TreeID is the node ID in the source Tree.
	TreeID int
	// Postorder is the node's position in every array aligned with
	// Index.Lengths.
	Postorder int
	// Tip reports whether the node is a terminal.
	Tip bool
	// Taxon is the node name; for tips it is the observation ID.
	Taxon string
}

// Index is a postorder view of a Tree. Nodes get stable integer positions
// when the index is built; every per-node array used by the metrics
// (branch lengths, aggregated counts, tip distances) is a flat buffer
// indexed by that position. Children always precede their parent and the
// root is last.
//
// An Index is immutable after NewIndex returns and is safe for concurrent
// use.
type Index struct {
	nodes  []IndexedNode
	length []float64
	parent []int // parent[p] = postorder position of p's parent, -1 for root
	byTree map[int]int
	tips   []int
	taxa   map[string]int
}

// NewIndex traverses t once and builds its postorder index. Branch lengths
// must be finite and non-negative and tip names must be unique; the root's
// own length is stored as 0.
func NewIndex(t Tree) (*Index, error) {
	if t == nil {
		return nil, fmt.Errorf("unifrac: nil tree: %w", ErrInvalidTree)
	}

	ix := &Index{
		byTree: make(map[int]int),
		taxa:   make(map[string]int),
	}

	type frame struct {
		id   int
		next int
	}

	root := t.Root()
	seen := map[int]bool{root: true}
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.Children(top.id)
		if top.next < len(children) {
			c := children[top.next]
			top.next++
			if seen[c] {
				return nil, fmt.Errorf("unifrac: node %d reached twice: %w", c, ErrInvalidTree)
			}
			seen[c] = true
			stack = append(stack, frame{id: c})
			continue
		}

		id := top.id
		stack = stack[:len(stack)-1]

		pos := len(ix.nodes)
		length := 0.0
		if id != root {
			length = t.Len(id)
			if math.IsNaN(length) || math.IsInf(length, 0) || length < 0 {
				return nil, fmt.Errorf("unifrac: node %d has length %v: %w", id, length, ErrInvalidBranchLength)
			}
		}
		for _, c := range children {
			ix.parent[ix.byTree[c]] = pos
		}

		n := IndexedNode{
			TreeID:    id,
			Postorder: pos,
			Tip:       t.IsTerm(id),
			Taxon:     t.Taxon(id),
		}
		if n.Tip {
			if n.Taxon != "" {
				if _, dup := ix.taxa[n.Taxon]; dup {
					return nil, fmt.Errorf("unifrac: tip %q: %w", n.Taxon, ErrDuplicateTip)
				}
				ix.taxa[n.Taxon] = pos
			}
			ix.tips = append(ix.tips, pos)
		}

		ix.nodes = append(ix.nodes, n)
		ix.length = append(ix.length, length)
		ix.parent = append(ix.parent, -1)
		ix.byTree[id] = pos
	}

	slog.Debug("unifrac: tree indexed",
		slog.Int("nodes", len(ix.nodes)),
		slog.Int("tips", len(ix.tips)))

	return ix, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return len(ix.nodes) }

// Lengths returns the branch lengths in postorder. The slice is shared and
// must not be modified.
func (ix *Index) Lengths() []float64 { return ix.length }

// Nodes returns all nodes in postorder. The slice is shared and must not
// be modified.
func (ix *Index) Nodes() []IndexedNode { return ix.nodes }

// Node returns the indexed node for a source tree ID.
func (ix *Index) Node(treeID int) (IndexedNode, bool) {
	pos, ok := ix.byTree[treeID]
	if !ok {
		return IndexedNode{}, false
	}
	return ix.nodes[pos], true
}

// TipIDs returns the postorder positions of all tips, in postorder.
func (ix *Index) TipIDs() []int { return ix.tips }

// Tip returns the postorder position of the tip named taxon.
func (ix *Index) Tip(taxon string) (int, bool) {
	pos, ok := ix.taxa[taxon]
	return pos, ok
}

// Parent returns the postorder position of the parent of pos, or -1 for
// the root.
func (ix *Index) Parent(pos int) int { return ix.parent[pos] }

// Aggregate sums per-sample counts up the tree. counts has one row per
// sample and one column per observation, with columns named by ids. The
// result has one row per node in postorder and one column per sample:
// entry (p, s) is the total count of sample s over the tips below p.
//
// Observations that are not tips of the tree, and columns beyond len(ids),
// are ignored; use validation to reject them.
func (ix *Index) Aggregate(counts mat.Matrix, ids []string) *mat.Dense {
	samples, cols := counts.Dims()
	agg := mat.NewDense(len(ix.nodes), samples, nil)

	for j := 0; j < min(cols, len(ids)); j++ {
		p, ok := ix.taxa[ids[j]]
		if !ok {
			continue
		}
		row := agg.RawRowView(p)
		for s := range row {
			row[s] += counts.At(s, j)
		}
	}

	// Children precede parents, so a single forward pass carries every
	// subtree total to the root.
	for p, pp := range ix.parent {
		if pp < 0 {
			continue
		}
		floats.Add(agg.RawRowView(pp), agg.RawRowView(p))
	}
	return agg
}

// IndexAndAggregate aggregates counts over t. When ix is nil a new index is
// built from t; otherwise ix is reused and t is not traversed.
func IndexAndAggregate(counts mat.Matrix, ids []string, t Tree, ix *Index) (*mat.Dense, *Index, error) {
	if ix == nil {
		var err error
		ix, err = NewIndex(t)
		if err != nil {
			return nil, nil, err
		}
	}
	return ix.Aggregate(counts, ids), ix, nil
}

// TipDistances returns the root-to-tip distance of each tip in tips,
// computed from lengths. The result is aligned with lengths and is zero at
// every position not listed in tips.
func TipDistances(lengths []float64, ix *Index, tips []int) []float64 {
	depth := make([]float64, len(ix.parent))
	// The root is last; walking backwards visits parents first.
	for p := len(ix.parent) - 1; p >= 0; p-- {
		if pp := ix.parent[p]; pp >= 0 {
			depth[p] = depth[pp] + lengths[p]
		}
	}

	dist := make([]float64, len(lengths))
	for _, p := range tips {
		dist[p] = depth[p]
	}
	return dist
}
