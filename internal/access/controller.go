// Package access implements the two-mode gate for the daily board. The board
// starts in edit mode; switching to view mode is unconditional, while
// returning to edit mode and clearing the board both require the single
// shared admin passphrase. There is deliberately no per-user identity and no
// lockout on repeated failures.
package access

import (
	"errors"
	"sync"
)

// Mode is the process-wide access mode.
type Mode string

const (
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

// ErrBadPassphrase is returned when the presented passphrase does not match
// the shared secret.
var ErrBadPassphrase = errors.New("incorrect password")

type Controller struct {
	mu     sync.RWMutex
	mode   Mode
	secret string
}

func NewController(secret string) *Controller {
	return &Controller{mode: ModeEdit, secret: secret}
}

func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// CanEdit implements board.Gate.
func (c *Controller) CanEdit() bool {
	return c.Mode() == ModeEdit
}

// EnterView switches to view mode. No confirmation required.
func (c *Controller) EnterView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeView
}

// Unlock returns to edit mode when pass matches the shared secret. On
// mismatch the mode is unchanged.
func (c *Controller) Unlock(pass string) error {
	if err := c.Confirm(pass); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
	return nil
}

// Confirm checks pass against the shared secret without changing mode. The
// clear-board action uses it from either mode.
func (c *Controller) Confirm(pass string) error {
	if pass != c.secret {
		return ErrBadPassphrase
	}
	return nil
}
