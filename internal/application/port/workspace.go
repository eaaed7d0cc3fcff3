package port

import (
	"context"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// Action is a clickable affordance shown inside an otherwise empty view,
// such as "create this note" or "open in default app".
type Action struct {
	Label string
	Run   func()
}

// View is a single content view hosted by a panel.
type View interface {
	ID() entity.ViewID
	DisplayName() string

	// Content returns the loaded content, nil while empty.
	Content() *entity.ContentRef
	Kind() entity.ContentKind
	Mode() entity.ViewMode

	// Open loads content into the view. It blocks until the content is
	// readable and must be called off the UI loop.
	Open(ctx context.Context, ref entity.ContentRef, state entity.OpenState) error

	// NaturalSize returns the intrinsic size of image content, zero otherwise.
	NaturalSize() entity.Size

	EphemeralState() entity.EphemeralState
	SetEphemeralState(state entity.EphemeralState)
	Focus()

	ShowAction(action Action)
	FocusAction()
}

// Workspace is the private sub-workspace of a panel. All methods are called
// from the UI loop.
type Workspace interface {
	// CreateView attaches a new empty view to the workspace.
	CreateView(ctx context.Context) (View, error)
	Views() []View
	// Detach removes a view. Layout listeners are notified asynchronously.
	Detach(ctx context.Context, id entity.ViewID) error
	// OnLayoutChange registers fn and returns a function that removes it.
	OnLayoutChange(fn func()) (unsubscribe func())
}
