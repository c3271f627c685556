// Package tree provides a general (n-ary) tree node and the usual traversal
// and aggregate algorithms over it. Trees are represented by their root node;
// a nil root is the empty tree.
package tree

import (
	"errors"
	"fmt"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/list"
	"github.com/stripe/sortedcontainers/pkg/queue"
)

// ErrEmptyTree is returned by queries that need at least one node, e.g.,
// Maximum on a nil root.
var ErrEmptyTree = errors.New("tree is empty")

// Number matches the built-in numeric types, for Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Node is a node in a general tree: an element plus an ordered list of
// children.
type Node[T any] struct {
	element  T
	children *list.ArrayList[*Node[T]]
}

// NewNode creates a node with the given element and children.
func NewNode[T any](element T, children ...*Node[T]) *Node[T] {
	node := &Node[T]{
		element:  element,
		children: list.New[*Node[T]](),
	}
	node.children.Append(children...)
	return node
}

// Element returns the element stored in the node.
func (n *Node[T]) Element() T {
	return n.element
}

// Children returns the node's children list.
func (n *Node[T]) Children() *list.ArrayList[*Node[T]] {
	return n.children
}

// AddChildren appends children to the node, after any existing ones.
func (n *Node[T]) AddChildren(children ...*Node[T]) {
	n.children.Append(children...)
}

// Size returns the number of nodes in the tree rooted at root.
func Size[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	size := 1
	for _, child := range root.children.Slice() {
		size += Size(child)
	}
	return size
}

// Height returns the height of the tree rooted at root. The empty tree has
// height 0 and a single node has height 1.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	maxChildHeight := 0
	for _, child := range root.children.Slice() {
		if childHeight := Height(child); childHeight > maxChildHeight {
			maxChildHeight = childHeight
		}
	}
	return 1 + maxChildHeight
}

// Sum returns the sum of all elements in the tree rooted at root.
func Sum[T Number](root *Node[T]) T {
	if root == nil {
		return 0
	}
	sum := root.element
	for _, child := range root.children.Slice() {
		sum += Sum(child)
	}
	return sum
}

// Maximum returns the largest element in the tree rooted at root under
// comparator, or ErrEmptyTree if root is nil.
func Maximum[T any](root *Node[T], comparator *compare.Comparator[T]) (T, error) {
	if root == nil {
		var zero T
		return zero, fmt.Errorf("maximum: %w", ErrEmptyTree)
	}

	maximum := root.element
	for _, child := range root.children.Slice() {
		childMaximum, err := Maximum(child, comparator)
		if err != nil {
			return maximum, err
		}
		if comparator.Compare(maximum, childMaximum) < 0 {
			maximum = childMaximum
		}
	}
	return maximum, nil
}

// Count returns the number of nodes in the tree rooted at root whose element
// equals element.
func Count[T comparable](root *Node[T], element T) int {
	if root == nil {
		return 0
	}
	occurrences := 0
	if root.element == element {
		occurrences++
	}
	for _, child := range root.children.Slice() {
		occurrences += Count(child, element)
	}
	return occurrences
}

// Leaves returns the elements of the childless nodes of the tree rooted at
// root, left to right.
func Leaves[T any](root *Node[T]) *list.ArrayList[T] {
	leaves := list.New[T]()
	collectLeaves(root, leaves)
	return leaves
}

func collectLeaves[T any](root *Node[T], leaves *list.ArrayList[T]) {
	if root == nil {
		return
	}
	if root.children.IsEmpty() {
		leaves.Append(root.element)
		return
	}
	for _, child := range root.children.Slice() {
		collectLeaves(child, leaves)
	}
}

// Preorder returns the elements of the tree rooted at root in preorder: each
// node before its children.
func Preorder[T any](root *Node[T]) *list.ArrayList[T] {
	preorder := list.New[T]()
	collectPreorder(root, preorder)
	return preorder
}

func collectPreorder[T any](root *Node[T], preorder *list.ArrayList[T]) {
	if root == nil {
		return
	}
	preorder.Append(root.element)
	for _, child := range root.children.Slice() {
		collectPreorder(child, preorder)
	}
}

// Postorder returns the elements of the tree rooted at root in postorder:
// each node after its children.
func Postorder[T any](root *Node[T]) *list.ArrayList[T] {
	postorder := list.New[T]()
	collectPostorder(root, postorder)
	return postorder
}

func collectPostorder[T any](root *Node[T], postorder *list.ArrayList[T]) {
	if root == nil {
		return
	}
	for _, child := range root.children.Slice() {
		collectPostorder(child, postorder)
	}
	postorder.Append(root.element)
}

// BreadthFirst returns the elements of the tree rooted at root level by
// level, left to right within each level.
func BreadthFirst[T any](root *Node[T]) *list.ArrayList[T] {
	traversal := list.New[T]()
	if root == nil {
		return traversal
	}

	pending := queue.New[*Node[T]](root)
	for !pending.IsEmpty() {
		current, err := pending.First()
		if err != nil {
			// Unreachable: emptiness is checked by the loop condition.
			break
		}
		_ = pending.Dequeue()
		traversal.Append(current.element)
		pending.Enqueue(current.children.Slice()...)
	}
	return traversal
}
