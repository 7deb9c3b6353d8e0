package tree

import (
	"iter"

	"github.com/pkg/errors"
)

// DefaultMaxItems is the capacity used when none is configured.
const DefaultMaxItems = 300_000

var (
	// ErrFull is returned when a new word is added to a tree holding the maximum number of items.
	ErrFull = errors.New("tree is full")

	// ErrNotFound is returned when the requested word is not stored in the tree.
	ErrNotFound = errors.New("not found")
)

// Item is a word together with the number of times it was seen.
type Item struct {
	Word  string
	Count int
}

// Option configures the tree.
type Option func(t *Tree)

// WithMaxItems sets the maximum number of distinct words the tree accepts.
// Non-positive value means DefaultMaxItems.
func WithMaxItems(maxItems int) Option {
	return func(t *Tree) {
		t.maxItems = maxItems
	}
}

// New creates new empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tree is an unbalanced binary search tree mapping words to counts.
// Each word is stored once, adding it again accumulates the count.
//
// Tree is not safe for concurrent use. Zero value is an empty tree with default capacity.
type Tree struct {
	root     *Node
	size     int
	maxItems int
}

// MaxItems returns the capacity of the tree.
func (t *Tree) MaxItems() int {
	if t.maxItems <= 0 {
		return DefaultMaxItems
	}
	return t.maxItems
}

// Len returns the number of distinct words stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// IsEmpty returns true if there are no items in the tree.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// IsFull returns true if no new word may be added.
func (t *Tree) IsFull() bool {
	return t.size >= t.MaxItems()
}

// Find returns the node storing the word.
func (t *Tree) Find(word string) (*Node, bool) {
	n := t.root
	for n != nil {
		switch {
		case word == n.item.Word:
			return n, true
		case word < n.item.Word:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil, false
}

// Add adds the item to the tree. If the word is already there, counts are summed.
// Capacity is checked before anything else, so a full tree rejects even words it already stores.
func (t *Tree) Add(item Item) error {
	if t.IsFull() {
		return ErrFull
	}

	n := &t.root
	for {
		if *n == nil {
			*n = &Node{item: item}
			t.size++
			return nil
		}

		switch {
		case item.Word == (*n).item.Word:
			(*n).item.Count += item.Count
			return nil
		case item.Word < (*n).item.Word:
			n = &(*n).left
		default:
			n = &(*n).right
		}
	}
}

// Delete removes the word from the tree.
//
// When the node has two children its payload is replaced by the one of the in-order successor
// and the successor node is removed instead, so a node returned earlier by Find may then hold
// a different item.
func (t *Tree) Delete(word string) error {
	n := &t.root
	for {
		if *n == nil {
			return ErrNotFound
		}

		if word == (*n).item.Word {
			break
		}

		if word < (*n).item.Word {
			n = &(*n).left
		} else {
			n = &(*n).right
		}
	}

	t.size--

	target := *n
	switch {
	case target.left == nil:
		*n = target.right
		target.right = nil
	case target.right == nil:
		*n = target.left
		target.left = nil
	default:
		// Leftmost node of the right subtree never has left child.
		s := &target.right
		for (*s).left != nil {
			s = &(*s).left
		}
		successor := *s
		target.item = successor.item
		*s = successor.right
		successor.right = nil
	}
	return nil
}

// Traverse calls visit for every item in ascending order of words.
// The tree must not be modified by visit.
func (t *Tree) Traverse(visit func(item Item)) {
	for item := range t.All() {
		visit(item)
	}
}

// All returns iterator over all items in ascending order of words.
func (t *Tree) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		var stack []*Node
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}

			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.item) {
				return
			}
			n = n.right
		}
	}
}

// DeleteAll removes all the items from the tree. Capacity is preserved.
func (t *Tree) DeleteAll() {
	if t.root == nil {
		return
	}

	// Post-order: links of a node are cleared only after both subtrees are released.
	stack := []*Node{t.root}
	var last *Node
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		switch {
		case n.left != nil && last != n.left && last != n.right:
			stack = append(stack, n.left)
		case n.right != nil && last != n.right:
			stack = append(stack, n.right)
		default:
			stack = stack[:len(stack)-1]
			n.left = nil
			n.right = nil
			last = n
		}
	}

	t.root = nil
	t.size = 0
}

// Node stores one item of the tree.
type Node struct {
	item  Item
	left  *Node
	right *Node
}

// Item returns the item stored in the node.
func (n *Node) Item() Item {
	return n.item
}

// Word returns the word stored in the node.
func (n *Node) Word() string {
	return n.item.Word
}

// Count returns the count stored in the node.
func (n *Node) Count() int {
	return n.item.Count
}
