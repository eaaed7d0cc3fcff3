package component

import (
	"context"
	"fmt"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/interact"
)

// OpenLinkRequest describes a link to open inside a popover.
type OpenLinkRequest struct {
	Text       string // Link text, optionally with a #subpath
	SourcePath string // Document the link was found in
	// State is merged over the state derived from the subpath.
	State *entity.OpenState
	// Mode overrides the configured default mode when set.
	Mode entity.ViewMode
	// ParentMode is the mode of the view hosting the link, used by "match".
	ParentMode entity.ViewMode
	AutoCreate bool
	// View receives the content. A new view is attached when nil.
	View port.View
}

// ResolveLink resolves link text relative to source.
func (p *Popover) ResolveLink(ctx context.Context, text, source string) (*entity.ContentRef, bool) {
	link := entity.ParseLinktext(text)
	return p.resolver.FirstLinkpathDest(ctx, link.Path, source)
}

// OpenLink resolves and opens a link. Missing targets show a create
// affordance unless AutoCreate is set, in which case the target is created
// first. Unresolved links are not errors.
func (p *Popover) OpenLink(ctx context.Context, req OpenLinkRequest) error {
	if p.panel.Detaching {
		return nil
	}
	ctx = logging.WithContext(ctx, *logging.FromContext(p.ctx))
	link := entity.ParseLinktext(req.Text)

	view, err := p.viewFor(ctx, req.View)
	if err != nil {
		return err
	}
	req.View = view

	ref, ok := p.resolver.FirstLinkpathDest(ctx, link.Path, req.SourcePath)
	if ok {
		return p.openResolved(ctx, *ref, link, req)
	}
	if !req.AutoCreate {
		p.displayCreateFileAction(ctx, req)
		return nil
	}

	var created *entity.ContentRef
	p.panel.Opening = true
	p.sched.Go(ctx, func(ctx context.Context) error {
		path, err := p.resolver.NewContentPath(ctx, link.Path, req.SourcePath)
		if err != nil {
			return fmt.Errorf("pick location for %q: %w", link.Path, err)
		}
		created, err = p.resolver.Create(ctx, path)
		if err != nil {
			return fmt.Errorf("create %q: %w", path, err)
		}
		return nil
	}, func(err error) {
		p.panel.Opening = false
		if p.panel.Detaching {
			p.Hide()
			return
		}
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to create missing content")
			return
		}
		logging.FromContext(ctx).Info().Str("path", created.Path).Msg("created missing content")
		if err := p.openResolved(ctx, *created, link, req); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to open created content")
		}
	})
	return nil
}

func (p *Popover) viewFor(ctx context.Context, view port.View) (port.View, error) {
	if view != nil {
		return view, nil
	}
	v, err := p.ws.CreateView(ctx)
	if err != nil {
		return nil, fmt.Errorf("attach view: %w", err)
	}
	return v, nil
}

func (p *Popover) openResolved(ctx context.Context, ref entity.ContentRef, link entity.Link, req OpenLinkRequest) error {
	if ref.Kind == entity.KindUnsupported {
		p.displayOpenExternalAction(ctx, ref, req.View)
		return nil
	}

	state := entity.OpenState{}
	if req.State != nil {
		state = *req.State
	}
	state.Mode = p.resolveMode(req.Mode, state.Mode, req.ParentMode)
	if state.EState.Subpath == "" {
		state.EState.Subpath = link.Subpath
	}
	return p.OpenFile(ctx, ref, state, req.View)
}

// resolveMode picks the view mode: explicit request, then caller state, then
// the configured default, where "match" follows the parent view.
func (p *Popover) resolveMode(explicit, stateMode, parent entity.ViewMode) entity.ViewMode {
	if explicit != "" {
		return explicit
	}
	if stateMode != "" {
		return stateMode
	}
	switch p.opts.DefaultMode {
	case DefaultModeSource:
		return entity.ModeSource
	case DefaultModeMatch:
		if parent != "" {
			return parent
		}
	}
	return entity.ModePreview
}

// OpenFile loads ref into view asynchronously. The popover stays in the
// opening state until the load settles; a hide issued meanwhile is resumed
// afterwards.
func (p *Popover) OpenFile(ctx context.Context, ref entity.ContentRef, state entity.OpenState, view port.View) error {
	if p.panel.Detaching {
		return nil
	}
	view, err := p.viewFor(ctx, view)
	if err != nil {
		return err
	}

	log := logging.FromContext(logging.WithPath(ctx, ref.Path))
	p.panel.Opening = true
	p.sched.Go(ctx, func(ctx context.Context) error {
		if sub := state.EState.Subpath; sub != "" && state.EState.Line == nil {
			rng, err := p.resolver.ResolveSubpath(ctx, ref, sub)
			if err != nil {
				log.Warn().Err(err).Str("subpath", sub).Msg("failed to resolve subpath")
			} else if rng != nil {
				state.EState = subpathState(sub, *rng).Merge(state.EState)
			}
		}
		if err := view.Open(ctx, ref, state); err != nil {
			return fmt.Errorf("open %s: %w", ref.Path, err)
		}
		return nil
	}, func(err error) {
		if err != nil {
			log.Error().Err(err).Msg("failed to load content")
		} else if !p.panel.Detaching {
			p.onOpened(view, ref, state)
		}
		p.panel.Opening = false
		if p.panel.Detaching {
			p.Hide()
		}
	})
	return nil
}

func subpathState(subpath string, rng entity.SubpathRange) entity.EphemeralState {
	line := rng.Start.Line
	start := rng.Start
	st := entity.EphemeralState{
		Subpath:  subpath,
		Line:     &line,
		StartLoc: &start,
	}
	if rng.End != nil {
		end := *rng.End
		st.EndLoc = &end
	}
	return st
}

func (p *Popover) onOpened(view port.View, ref entity.ContentRef, state entity.OpenState) {
	switch ref.Kind {
	case entity.KindImage:
		if size := view.NaturalSize(); !size.IsZero() {
			p.panel.Image = size
			p.panel.AspectRatio = size.Ratio()
			p.setAspectLocked(true)
			p.applyNaturalSize(size)
		}
	case entity.KindPaged:
		p.panel.Rect.W = p.opts.PagedSize.W
		p.panel.Rect.H = p.opts.PagedSize.H
		p.reflowIfShown()
	}

	if p.opts.AutoFocus {
		release := p.recency.Ignore(ref.Path)
		view.Focus()
		p.afterHover(p.opts.RecencyGrace, release)
	} else {
		p.panel.Title = view.DisplayName()
		p.panel.TitlePath = ref.Path
	}

	if state.Mode == entity.ModeSource && !state.EState.IsEmpty() {
		eState := state.EState
		p.WhenShown(func() {
			p.sched.AfterFunc(p.opts.SettleDelay, func() {
				if p.panel.Detaching {
					return
				}
				view.SetEphemeralState(eState)
			})
		})
	}
	p.render()
}

// applyNaturalSize sizes the panel to image content plus the header.
func (p *Popover) applyNaturalSize(size entity.Size) {
	p.panel.Rect.W = size.W
	p.panel.Rect.H = size.H + p.surface.HeaderHeight()
	p.reflowIfShown()
}

func (p *Popover) reflowIfShown() {
	if !p.panel.Visible || p.binder.inter == nil || p.binder.inter.Interacting() {
		return
	}
	p.binder.reflow(interact.ActionResize, entity.Edges{Right: true, Bottom: true})
	p.binder.reflow(interact.ActionDrag, entity.Edges{})
}

// displayCreateFileAction offers to create a missing link target. Running
// the action pins the panel and reopens the link with AutoCreate, once.
func (p *Popover) displayCreateFileAction(ctx context.Context, req OpenLinkRequest) {
	view := req.View
	used := false
	p.panel.Title = req.Text
	view.ShowAction(port.Action{
		Label: fmt.Sprintf("%s is not yet created. Click to create.", req.Text),
		Run: func() {
			if used || p.panel.Detaching {
				return
			}
			used = true
			p.SetPinned(true)
			retry := req
			retry.AutoCreate = true
			if err := p.OpenLink(ctx, retry); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("failed to create linked content")
			}
		},
	})
	if p.opts.AutoFocus {
		p.sched.AfterFunc(p.opts.CreateFocusDelay, func() {
			if !p.panel.Detaching {
				view.FocusAction()
			}
		})
	}
	p.render()
}

func (p *Popover) displayOpenExternalAction(ctx context.Context, ref entity.ContentRef, view port.View) {
	p.panel.Title = ref.Name()
	p.panel.TitlePath = ref.Path
	view.ShowAction(port.Action{
		Label: fmt.Sprintf("%s cannot be previewed. Click to open in the default app.", ref.Name()),
		Run: func() {
			if p.opener == nil {
				return
			}
			p.sched.Go(ctx, func(ctx context.Context) error {
				return p.opener.OpenExternal(ctx, ref.Path)
			}, func(err error) {
				if err != nil {
					logging.FromContext(ctx).Error().Err(err).Str("path", ref.Path).Msg("failed to open in default app")
				}
			})
		},
	})
	p.render()
}
