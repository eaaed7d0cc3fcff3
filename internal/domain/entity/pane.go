// Package entity contains domain entities representing core concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// ViewID uniquely identifies a hosted view.
type ViewID string

// SplitDirection indicates how a view container splits its children.
type SplitDirection int

const (
	SplitNone       SplitDirection = iota // Leaf node
	SplitHorizontal                       // Left/right split
	SplitVertical                         // Top/bottom split
)

// HostedView is a single document view nested inside a panel. Loaded
// content lives with the host view implementation.
type HostedView struct {
	ID        ViewID
	CreatedAt time.Time
}

// NewHostedView creates an empty hosted view.
func NewHostedView(id ViewID) *HostedView {
	return &HostedView{
		ID:        id,
		CreatedAt: time.Now(),
	}
}

// ViewNode represents a node in a panel's private view tree.
// It can be either:
//   - Leaf node: Contains a single HostedView
//   - Split node: Contains children laid out along SplitDir
type ViewNode struct {
	ID       string
	View     *HostedView // Non-nil for leaf nodes
	Parent   *ViewNode   // nil for root
	Children []*ViewNode

	SplitDir SplitDirection
}

// IsLeaf returns true if this node contains a view (no children).
func (n *ViewNode) IsLeaf() bool {
	return n.View != nil && len(n.Children) == 0
}

// Walk traverses the tree calling fn for each node. Returns early if fn returns false.
func (n *ViewNode) Walk(fn func(*ViewNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindView searches the tree for a view with the given ID.
func (n *ViewNode) FindView(id ViewID) *ViewNode {
	var found *ViewNode
	n.Walk(func(node *ViewNode) bool {
		if node.View != nil && node.View.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// LeafCount returns the number of leaf nodes (views) in the tree.
func (n *ViewNode) LeafCount() int {
	count := 0
	n.Walk(func(node *ViewNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Insert adds child at index, clamped to the children bounds.
func (n *ViewNode) Insert(index int, child *ViewNode) {
	if index < 0 || index > len(n.Children) {
		index = len(n.Children)
	}
	child.Parent = n
	n.Children = append(n.Children, nil)
	copy(n.Children[index+1:], n.Children[index:])
	n.Children[index] = child
}

// Remove detaches child from n. Returns false if child is not a direct child.
func (n *ViewNode) Remove(child *ViewNode) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return true
		}
	}
	return false
}
