package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
)

// emptyViewName is shown for a view with nothing loaded.
const emptyViewName = "New tab"

// ContentSource loads content for views.
type ContentSource interface {
	Ref(rel string) (*entity.ContentRef, error)
	Read(ctx context.Context, rel string) ([]byte, error)
	NaturalSize(ctx context.Context, rel string) (entity.Size, error)
}

// View is a hosted view backed by a ContentSource. Open runs off the UI
// loop, every other method on it; the mutex covers what both touch.
type View struct {
	ws   *Workspace
	node *entity.ViewNode

	mu      sync.RWMutex
	content *entity.ContentRef
	text    []byte
	natural entity.Size
	mode    entity.ViewMode
	eState  entity.EphemeralState
	action  *port.Action
	focused bool
}

var _ port.View = (*View)(nil)

func (v *View) ID() entity.ViewID {
	return v.node.View.ID
}

func (v *View) DisplayName() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.content == nil {
		return emptyViewName
	}
	return v.content.Name()
}

func (v *View) Content() *entity.ContentRef {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.content == nil {
		return nil
	}
	ref := *v.content
	return &ref
}

func (v *View) Kind() entity.ContentKind {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.content == nil {
		return entity.KindUnsupported
	}
	return v.content.Kind
}

func (v *View) Mode() entity.ViewMode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

// Open loads ref. Markdown is read into memory, images are measured and
// other kinds only checked for existence.
func (v *View) Open(ctx context.Context, ref entity.ContentRef, state entity.OpenState) error {
	if _, err := v.ws.source.Ref(ref.Path); err != nil {
		return fmt.Errorf("open view: %w", err)
	}

	var (
		text    []byte
		natural entity.Size
		err     error
	)
	switch ref.Kind {
	case entity.KindMarkdown:
		text, err = v.ws.source.Read(ctx, ref.Path)
	case entity.KindImage:
		natural, err = v.ws.source.NaturalSize(ctx, ref.Path)
	}
	if err != nil {
		return fmt.Errorf("open view: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := state.Mode
	if mode == "" {
		mode = entity.ModePreview
	}

	v.mu.Lock()
	v.content = &ref
	v.text = text
	v.natural = natural
	v.mode = mode
	v.eState = state.EState
	v.action = nil
	v.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("view_id", string(v.ID())).
		Str("path", ref.Path).
		Str("mode", string(mode)).
		Msg("view opened")
	return nil
}

func (v *View) NaturalSize() entity.Size {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.natural
}

func (v *View) EphemeralState() entity.EphemeralState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.eState
}

func (v *View) SetEphemeralState(state entity.EphemeralState) {
	v.mu.Lock()
	v.eState = v.eState.Merge(state)
	v.mu.Unlock()
}

// Focus marks the view focused and reports the content to the focus hook.
func (v *View) Focus() {
	v.mu.Lock()
	v.focused = true
	ref := v.content
	v.mu.Unlock()

	v.ws.focusView(v)
	if ref != nil && v.ws.onFocus != nil {
		v.ws.onFocus(*ref, v.DisplayName())
	}
}

// Focused reports whether Focus ran since the last Blur.
func (v *View) Focused() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.focused
}

// Blur clears the focus flag.
func (v *View) Blur() {
	v.mu.Lock()
	v.focused = false
	v.mu.Unlock()
}

func (v *View) ShowAction(action port.Action) {
	v.mu.Lock()
	v.action = &action
	v.content = nil
	v.text = nil
	v.mu.Unlock()
}

func (v *View) FocusAction() {
	v.mu.Lock()
	hasAction := v.action != nil
	if hasAction {
		v.focused = true
	}
	v.mu.Unlock()
	if hasAction {
		v.ws.focusView(v)
	}
}

// Action returns the affordance shown instead of content, if any.
func (v *View) Action() (port.Action, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.action == nil {
		return port.Action{}, false
	}
	return *v.action, true
}

// Text returns the loaded markdown source.
func (v *View) Text() []byte {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}
