package avl

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// describe renders the tree shape, left child first. Leaves are printed as
// plain nodes; an empty side of an inner node is printed as "-".
func (t *tree[P]) describe(label func(*P) string) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("%d entries, height %d", t.len(), t.height(t.root)))
	t.describeNode(root, t.root, label)
	return root.String()
}

func (t *tree[P]) describeNode(branch treeprint.Tree, h Handle, label func(*P) string) {
	n := t.node(h)
	if n == nil {
		return
	}
	if n.left == Nil && n.right == Nil {
		branch.AddNode(label(&n.payload))
		return
	}
	sub := branch.AddBranch(fmt.Sprintf("%s (h=%d)", label(&n.payload), n.height))
	for _, child := range []Handle{n.left, n.right} {
		if child == Nil {
			sub.AddNode("-")
			continue
		}
		t.describeNode(sub, child, label)
	}
}
