package avl

import (
	"github.com/dendrascience/ufind/arena"
)

type node[P any] struct {
	left, right Handle
	height      int32
	payload     P
}

// tree is the balancing engine shared by every container variant. P is
// whatever a variant keeps in a node: an inline key, a key and a value, or
// handles into secondary arenas.
type tree[P any] struct {
	nodes *arena.Arena[node[P]]
	root  Handle
	// path is scratch space for insert; it is cleared, not freed, between calls.
	path *arena.Arena[slot]
}

func newTree[P any](o options) *tree[P] {
	return &tree[P]{
		nodes: arena.New[node[P]](o.arena...),
		path:  arena.New[slot](),
	}
}

func (t *tree[P]) node(h Handle) *node[P] {
	if h == Nil {
		return nil
	}
	n, _ := t.nodes.Get(arena.Index(h - 1))
	return n
}

func (t *tree[P]) payload(h Handle) *P {
	n := t.node(h)
	if n == nil {
		return nil
	}
	return &n.payload
}

// resolve returns the link field s designates in the current arena state.
// The returned pointer must not outlive the next append to t.nodes.
func (t *tree[P]) resolve(s slot) *Handle {
	switch s.selector() {
	case selectorRoot:
		return &t.root
	case selectorLeft:
		if n := t.node(s.owner()); n != nil {
			return &n.left
		}
	case selectorRight:
		if n := t.node(s.owner()); n != nil {
			return &n.right
		}
	}
	return nil
}

func (t *tree[P]) height(h Handle) int32 {
	if n := t.node(h); n != nil {
		return n.height
	}
	return 0
}

func (t *tree[P]) balanceFactor(h Handle) int32 {
	n := t.node(h)
	if n == nil {
		return 0
	}
	return t.height(n.left) - t.height(n.right)
}

func (t *tree[P]) updateHeight(h Handle) {
	n := t.node(h)
	if n == nil {
		return
	}
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}

// rotateLeft lifts the right child of the node at s into s.
func (t *tree[P]) rotateLeft(s slot) {
	link := t.resolve(s)
	if link == nil {
		return
	}
	h := *link
	n := t.node(h)
	if n == nil || n.right == Nil {
		return
	}
	pivot := n.right
	p := t.node(pivot)
	n.right = p.left
	p.left = h
	t.updateHeight(h)
	t.updateHeight(pivot)
	*t.resolve(s) = pivot
}

// rotateRight lifts the left child of the node at s into s.
func (t *tree[P]) rotateRight(s slot) {
	link := t.resolve(s)
	if link == nil {
		return
	}
	h := *link
	n := t.node(h)
	if n == nil || n.left == Nil {
		return
	}
	pivot := n.left
	p := t.node(pivot)
	n.left = p.right
	p.right = h
	t.updateHeight(h)
	t.updateHeight(pivot)
	*t.resolve(s) = pivot
}

// rebalance restores the height invariant at s after one of its subtrees
// grew by one.
func (t *tree[P]) rebalance(s slot) {
	link := t.resolve(s)
	if link == nil || *link == Nil {
		return
	}
	h := *link
	switch bf := t.balanceFactor(h); {
	case bf > 1:
		if t.balanceFactor(t.node(h).left) < 0 {
			t.rotateLeft(leftOf(h))
		}
		t.rotateRight(s)
	case bf < -1:
		if t.balanceFactor(t.node(h).right) > 0 {
			t.rotateRight(rightOf(h))
		}
		t.rotateLeft(s)
	}
}

// search descends from the root. compare reports the probe key against a
// node's payload as a three-way result.
func (t *tree[P]) search(compare func(*P) int) (Handle, bool) {
	h := t.root
	for h != Nil {
		n := t.node(h)
		if n == nil {
			return Nil, false
		}
		c := compare(&n.payload)
		switch {
		case c == 0:
			return h, true
		case c > 0:
			h = n.right
		default:
			h = n.left
		}
	}
	return Nil, false
}

// insert binds a new node for the probe key unless one compares equal.
// build is called only when a new node is needed, after capacity has been
// checked; its error aborts the insertion without touching the tree.
func (t *tree[P]) insert(compare func(*P) int, build func() (P, error)) (Handle, bool, error) {
	t.path.Clear()

	at := rootSlot
	for {
		h := *t.resolve(at)
		if h == Nil {
			break
		}
		n := t.node(h)
		c := compare(&n.payload)
		if c == 0 {
			return h, false, nil
		}
		if _, err := t.path.Append(at); err != nil {
			return Nil, false, err
		}
		if c > 0 {
			at = rightOf(h)
		} else {
			at = leftOf(h)
		}
	}

	if t.nodes.Full() {
		return Nil, false, ErrCapacityExhausted
	}
	p, err := build()
	if err != nil {
		return Nil, false, err
	}
	idx, err := t.nodes.Append(node[P]{height: 1, payload: p})
	if err != nil {
		return Nil, false, err
	}
	h := Handle(idx + 1)
	// the append may have moved every node; re-resolve the slot
	*t.resolve(at) = h

	for i := t.path.Len(); i > 0; i-- {
		s := t.path.At(arena.Index(i - 1))
		t.rebalance(s)
		t.updateHeight(*t.resolve(s))
	}
	return h, true, nil
}

// walk visits every node in storage order, which is insertion order.
func (t *tree[P]) walk(yield func(Handle, *P) bool) {
	for i, n := range t.nodes.All {
		if !yield(Handle(i+1), &n.payload) {
			return
		}
	}
}

func (t *tree[P]) len() int { return t.nodes.Len() }

func (t *tree[P]) free() {
	t.nodes.Reset()
	t.path.Reset()
	t.root = Nil
}
