// Package workspace hosts the private view tree of a panel in memory.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/mainloop"
)

// ErrViewNotFound is returned for view ids the workspace does not hold.
var ErrViewNotFound = errors.New("workspace: view not found")

var workspaceSeq atomic.Int64

// FocusFunc is called on the UI loop when a view with content takes focus.
type FocusFunc func(ref entity.ContentRef, title string)

// Workspace implements port.Workspace over an entity.Workspace tree. All
// methods except View.Open run on the UI loop.
type Workspace struct {
	model     *entity.Workspace
	source    ContentSource
	coalescer *mainloop.Coalescer
	onFocus   FocusFunc

	views     map[entity.ViewID]*View
	focused   *View
	nextView  int
	listeners map[int]func()
	nextSub   int
	closed    bool
}

var _ port.Workspace = (*Workspace)(nil)

// New creates an empty workspace. Layout listeners run through post, once
// per burst of changes.
func New(source ContentSource, post func(func()), onFocus FocusFunc) *Workspace {
	id := entity.WorkspaceID(fmt.Sprintf("ws-%d", workspaceSeq.Add(1)))
	return &Workspace{
		model:     entity.NewWorkspace(id),
		source:    source,
		coalescer: mainloop.NewCoalescer(post),
		onFocus:   onFocus,
		views:     make(map[entity.ViewID]*View),
		listeners: make(map[int]func()),
	}
}

// ID returns the workspace id.
func (w *Workspace) ID() entity.WorkspaceID {
	return w.model.ID
}

// Model returns the view tree. Callers must not modify it.
func (w *Workspace) Model() *entity.Workspace {
	return w.model
}

func (w *Workspace) CreateView(ctx context.Context) (port.View, error) {
	return w.insert(ctx, w.model.Root, -1)
}

// Split adds a new empty view next to id, splitting along dir.
func (w *Workspace) Split(ctx context.Context, id entity.ViewID, dir entity.SplitDirection) (port.View, error) {
	node := w.model.FindView(id)
	if node == nil {
		return nil, fmt.Errorf("split %s: %w", id, ErrViewNotFound)
	}
	parent := node.Parent
	if parent.SplitDir == dir {
		return w.insert(ctx, parent, indexOf(parent, node)+1)
	}

	// Wrap the leaf in a container split the requested way.
	container := &entity.ViewNode{ID: string(id) + "-split", SplitDir: dir}
	idx := indexOf(parent, node)
	parent.Remove(node)
	parent.Insert(idx, container)
	container.Insert(0, node)
	return w.insert(ctx, container, 1)
}

func (w *Workspace) insert(ctx context.Context, parent *entity.ViewNode, index int) (port.View, error) {
	if w.closed {
		return nil, fmt.Errorf("create view: workspace %s closed", w.model.ID)
	}
	w.nextView++
	id := entity.ViewID(fmt.Sprintf("%s-view-%d", w.model.ID, w.nextView))
	node := &entity.ViewNode{ID: string(id), View: entity.NewHostedView(id)}
	parent.Insert(index, node)

	v := &View{ws: w, node: node, mode: entity.ModePreview}
	w.views[id] = v

	logging.FromContext(ctx).Debug().Str("view_id", string(id)).Int("views", w.model.ViewCount()).Msg("view created")
	w.layoutChanged()
	return v, nil
}

func (w *Workspace) Views() []port.View {
	hosted := w.model.AllViews()
	out := make([]port.View, 0, len(hosted))
	for _, h := range hosted {
		if v := w.views[h.ID]; v != nil {
			out = append(out, v)
		}
	}
	return out
}

// View returns the concrete view for id.
func (w *Workspace) View(id entity.ViewID) (*View, bool) {
	v, ok := w.views[id]
	return v, ok
}

// Focused returns the view that took focus last, if still attached.
func (w *Workspace) Focused() *View {
	return w.focused
}

func (w *Workspace) Detach(ctx context.Context, id entity.ViewID) error {
	node := w.model.FindView(id)
	if node == nil {
		return fmt.Errorf("detach %s: %w", id, ErrViewNotFound)
	}
	parent := node.Parent
	parent.Remove(node)
	w.collapse(parent)
	delete(w.views, id)
	if w.focused != nil && w.focused.ID() == id {
		w.focused = nil
	}

	logging.FromContext(ctx).Debug().Str("view_id", string(id)).Int("views", w.model.ViewCount()).Msg("view detached")
	w.layoutChanged()
	return nil
}

// collapse removes empty containers and unwraps single-child ones. The root
// always stays.
func (w *Workspace) collapse(n *entity.ViewNode) {
	for n != nil && n != w.model.Root {
		parent := n.Parent
		switch len(n.Children) {
		case 0:
			parent.Remove(n)
		case 1:
			child := n.Children[0]
			idx := indexOf(parent, n)
			parent.Remove(n)
			n.Remove(child)
			parent.Insert(idx, child)
		default:
			return
		}
		n = parent
	}
}

func (w *Workspace) OnLayoutChange(fn func()) func() {
	w.nextSub++
	id := w.nextSub
	w.listeners[id] = fn
	return func() { delete(w.listeners, id) }
}

// Close drops pending notifications and refuses new views.
func (w *Workspace) Close() {
	w.closed = true
	w.coalescer.Destroy()
	w.listeners = make(map[int]func())
}

func (w *Workspace) layoutChanged() {
	w.coalescer.Post(string(w.model.ID), func() {
		subs := make([]func(), 0, len(w.listeners))
		for _, fn := range w.listeners {
			subs = append(subs, fn)
		}
		for _, fn := range subs {
			fn()
		}
	})
}

func (w *Workspace) focusView(v *View) {
	if w.focused != nil && w.focused != v {
		w.focused.Blur()
	}
	w.focused = v
}

func indexOf(parent, child *entity.ViewNode) int {
	for i, c := range parent.Children {
		if c == child {
			return i
		}
	}
	return -1
}
