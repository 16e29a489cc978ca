package avl

// Handle names a node in a container. Handles are the node's arena index
// plus one; Nil never names a node.
type Handle uint32

// Nil is the absent handle.
const Nil Handle = 0

type selector uint32

const (
	selectorNone selector = iota
	selectorLeft
	selectorRight
	selectorRoot
)

const (
	selectorBits = 2
	handleBits   = 32 - selectorBits
	handleMask   = 1<<handleBits - 1
)

// slot designates a mutable child link: the tree root field, or the left or
// right field of a node. It packs the selector in the top two bits and the
// owning node's handle in the rest.
type slot uint32

func makeSlot(sel selector, h Handle) slot {
	return slot(uint32(h)&handleMask | uint32(sel)<<handleBits)
}

var rootSlot = makeSlot(selectorRoot, Nil)

func (s slot) selector() selector { return selector(uint32(s) >> handleBits) }

func (s slot) owner() Handle { return Handle(uint32(s) & handleMask) }

func leftOf(h Handle) slot { return makeSlot(selectorLeft, h) }

func rightOf(h Handle) slot { return makeSlot(selectorRight, h) }
