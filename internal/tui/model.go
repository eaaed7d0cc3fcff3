package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/component"
	"github.com/bnema/hoverpane/internal/ui/mainloop"
)

// Model is the bubbletea model of the terminal host.
type Model struct {
	h    *host
	keys styles.PanelKeyMap
	help help.Model
}

// NewModel reads the document and prepares the host. loop must be woken
// into this model through mainloop.WakeMsg.
func NewModel(ctx context.Context, loop *mainloop.Loop, deps Deps) (Model, error) {
	h, err := newHost(ctx, loop, loop.Drain, deps)
	if err != nil {
		return Model{}, err
	}
	return Model{
		h:    h,
		keys: styles.DefaultPanelKeyMap(),
		help: styles.NewStyledHelp(h.theme),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mainloop.WakeMsg:
		m.h.drain()
	case tea.WindowSizeMsg:
		m.h.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
	case tea.MouseMsg:
		m.h.mouse(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.h.shutdown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.h.scroll(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.h.scroll(1)
		return m, nil
	case key.Matches(msg, m.keys.CloseAll):
		m.h.registry.CloseAll()
		return m, nil
	}

	ps := m.h.focused()
	if ps == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Pin):
		ps.p.TogglePin()
	case key.Matches(msg, m.keys.Minimize):
		ps.p.ToggleMinimized()
	case key.Matches(msg, m.keys.Aspect):
		ps.p.ToggleConstrainAspectRatio()
	case key.Matches(msg, m.keys.Split):
		m.h.split(ps)
	case key.Matches(msg, m.keys.Detach):
		m.h.detachLast(ps)
	case key.Matches(msg, m.keys.Close):
		ps.p.ExplicitHide()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.h.frame(m.help.View(m.keys))
}

// Run shows deps.Document full screen until the user quits or ctx ends.
func Run(ctx context.Context, deps Deps) error {
	log := logging.FromContext(ctx)

	var program *tea.Program
	loop := mainloop.NewLoop(func() { program.Send(mainloop.WakeMsg{}) })
	defer loop.Close()

	model, err := NewModel(ctx, loop, deps)
	if err != nil {
		return err
	}
	program = tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if deps.Watch {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := deps.Vault.Watch(watchCtx, func(rel string) {
			loop.Post(func() { model.h.fileChanged(rel) })
		})
		if err != nil {
			log.Warn().Err(err).Msg("vault watch unavailable")
		}
	}

	if deps.Reconfigure != nil {
		deps.Reconfigure(func(opts component.PopoverOptions, trigger component.HoverTriggerOptions) {
			loop.Post(func() { model.h.applyOptions(opts, trigger) })
		})
	}

	log.Info().Str("document", deps.Document).Msg("terminal host started")
	defer func() {
		s := model.h.md.Stats()
		log.Debug().
			Int("hits", s.Hits).
			Int("misses", s.Misses).
			Int("evictions", s.Evictions).
			Int("lines", s.Weight).
			Msg("rendered note cache")
	}()
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal host: %w", err)
	}
	return nil
}
