package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer command, not a physical key
type Action int

const (
	ActionReseed Action = iota
	ActionRougher
	ActionSmoother
	ActionGrow
	ActionShrink
	ActionToggleRelief
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionReseed:       "reseed",
	ActionRougher:      "rougher",
	ActionSmoother:     "smoother",
	ActionGrow:         "grow",
	ActionShrink:       "shrink",
	ActionToggleRelief: "toggle-relief",
	ActionQuit:         "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// repeatable actions fire again while their key is held
var repeatable = [ActionCount]bool{
	ActionRougher:  true,
	ActionSmoother: true,
}

// Manager maps physical keys to actions and queues them until the frame
// loop drains them. Key events arrive on the main thread between frames.
type Manager struct {
	mu sync.Mutex

	keyToActions map[glfw.Key][]Action
	held         [ActionCount]bool
	pending      []Action
}

// NewManager creates a Manager with the default viewer bindings
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}

	m.BindKey(glfw.KeyR, ActionReseed)
	m.BindKey(glfw.KeyUp, ActionRougher)
	m.BindKey(glfw.KeyDown, ActionSmoother)
	m.BindKey(glfw.KeyEqual, ActionGrow)
	m.BindKey(glfw.KeyKPAdd, ActionGrow)
	m.BindKey(glfw.KeyMinus, ActionShrink)
	m.BindKey(glfw.KeyKPSubtract, ActionShrink)
	m.BindKey(glfw.KeySpace, ActionToggleRelief)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

// HandleKeyEvent queues the actions bound to key on press, and again on
// repeat for repeatable actions.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, act := range m.keyToActions[key] {
		switch action {
		case glfw.Press:
			if !m.held[act] {
				m.pending = append(m.pending, act)
			}
			m.held[act] = true
		case glfw.Repeat:
			if repeatable[act] {
				m.pending = append(m.pending, act)
			}
		case glfw.Release:
			m.held[act] = false
		}
	}
}

// SetKeyCallback routes the window's key events into m
func (m *Manager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// Drain returns queued actions in arrival order and clears the queue.
func (m *Manager) Drain() []Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = nil
	return out
}

// IsHeld reports whether a key bound to action is currently down
func (m *Manager) IsHeld(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.held[action]
}
