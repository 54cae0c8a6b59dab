package view

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

var (
	// ErrNotAuthenticated indicates the authentication gate is up and no view
	// may be entered.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrViewForbidden indicates the user lacks the administrator flag for the
	// requested view.
	ErrViewForbidden = errors.New("view forbidden")
	// ErrInvalidTransition indicates a navigation move not in the transition
	// table.
	ErrInvalidTransition = errors.New("invalid view transition")
)

var transitionRecorder = func(from, to string) {}

// RegisterTransitionRecorder allows external packages to observe view
// transitions.
func RegisterTransitionRecorder(recorder func(from, to string)) {
	if recorder == nil {
		transitionRecorder = func(string, string) {}
		return
	}

	transitionRecorder = recorder
}

// Coordinator is the single-session view state machine. It starts at the
// stream with the authentication gate up; the gate has exactly one exit,
// Authenticate.
type Coordinator struct {
	mu            sync.Mutex
	log           *slog.Logger
	current       View
	authenticated bool
}

func NewCoordinator(log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}

	return &Coordinator{
		log:     log,
		current: ViewStream,
	}
}

// Current returns the active view and whether the session is authenticated.
func (c *Coordinator) Current() (View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current, c.authenticated
}

// Authenticate drops the authentication gate after a successful or guest
// login.
func (c *Coordinator) Authenticate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authenticated = true
}

// NavigateTo moves to the requested view. Entering admin requires the
// administrator flag; nothing is reachable while the gate is up.
func (c *Coordinator) NavigateTo(target View, user models.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.authenticated {
		return ErrNotAuthenticated
	}

	if target == ViewAdmin && !user.IsAdmin {
		c.log.Warn("admin view denied", slog.String("username", user.Username))
		return ErrViewForbidden
	}

	if target == c.current {
		return nil
	}

	if !IsTransitionAllowed(c.current, target) {
		c.log.Warn("invalid view transition", slog.String("from", string(c.current)), slog.String("to", string(target)))
		return ErrInvalidTransition
	}

	transitionRecorder(string(c.current), string(target))
	c.current = target

	return nil
}

// Reset forces the coordinator back to the stream and re-raises the
// authentication gate (logout).
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = ViewStream
	c.authenticated = false
}
