// Package desktop hands content to the desktop environment (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bnema/hoverpane/internal/application/port"
	"github.com/bnema/hoverpane/internal/logging"
)

// ErrNoOpener is returned when no desktop open command is installed.
var ErrNoOpener = errors.New("desktop: no opener found (install xdg-utils)")

// openerCandidates are tried in order when looking up the open command.
var openerCandidates = []string{"xdg-open", "gio", "open"}

// Opener implements port.ExternalOpener by launching the default
// application for vault content.
type Opener struct {
	root    string
	command []string
}

var _ port.ExternalOpener = (*Opener)(nil)

// NewOpener creates an opener for content below root.
func NewOpener(root string) *Opener {
	o := &Opener{root: root}
	for _, name := range openerCandidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		o.command = []string{path}
		if name == "gio" {
			o.command = append(o.command, "open")
		}
		break
	}
	return o
}

// NewOpenerWithCommand uses command (program and leading arguments) instead
// of looking one up.
func NewOpenerWithCommand(root string, command ...string) *Opener {
	return &Opener{root: root, command: command}
}

// OpenExternal starts the default application for the vault path and
// returns once it has been spawned.
func (o *Opener) OpenExternal(ctx context.Context, rel string) error {
	log := logging.FromContext(ctx)

	if len(o.command) == 0 {
		return ErrNoOpener
	}
	abs := filepath.Join(o.root, filepath.FromSlash(rel))
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("open %q: %w", rel, err)
	}

	args := append(append([]string{}, o.command[1:]...), abs)
	cmd := exec.Command(o.command[0], args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %q: %w", rel, err)
	}

	// Release the process so it continues running after we close
	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("failed to release opener process (non-fatal)")
	}

	log.Info().Str("path", rel).Str("command", o.command[0]).Msg("opened in default app")
	return nil
}
