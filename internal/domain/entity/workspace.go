package entity

import "time"

// WorkspaceID identifies a panel's private sub-workspace.
type WorkspaceID string

// Workspace is the view tree owned by one panel.
type Workspace struct {
	ID        WorkspaceID
	Root      *ViewNode // Vertical root split; never nil
	CreatedAt time.Time
}

// NewWorkspace creates an empty workspace with a vertical root split.
func NewWorkspace(id WorkspaceID) *Workspace {
	return &Workspace{
		ID:        id,
		Root:      &ViewNode{ID: string(id) + "-root", SplitDir: SplitVertical},
		CreatedAt: time.Now(),
	}
}

// ViewCount returns the number of views in the workspace.
func (w *Workspace) ViewCount() int {
	if w.Root == nil {
		return 0
	}
	return w.Root.LeafCount()
}

// FindView searches for a view by ID in the workspace.
func (w *Workspace) FindView(id ViewID) *ViewNode {
	if w.Root == nil {
		return nil
	}
	return w.Root.FindView(id)
}

// AllViews returns all leaf views in tree order.
func (w *Workspace) AllViews() []*HostedView {
	var views []*HostedView
	if w.Root == nil {
		return views
	}
	w.Root.Walk(func(node *ViewNode) bool {
		if node.View != nil {
			views = append(views, node.View)
		}
		return true
	})
	return views
}
