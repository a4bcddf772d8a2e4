package session

import (
	"sync"
	"time"
)

// Registry holds one Controller per login session until the login expires.
type Registry struct {
	mu          sync.Mutex
	controllers map[string]*registryEntry
	newFn       func() *Controller
}

type registryEntry struct {
	ctrl      *Controller
	expiresAt time.Time
}

func NewRegistry(newFn func() *Controller) *Registry {
	return &Registry{
		controllers: make(map[string]*registryEntry),
		newFn:       newFn,
	}
}

// Get returns the controller for loginID, creating it on first use.
// expiresAt is the end of the login; Sweep drops the controller after it.
func (r *Registry) Get(loginID string, expiresAt time.Time) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.controllers[loginID]
	if !ok {
		e = &registryEntry{ctrl: r.newFn()}
		r.controllers[loginID] = e
	}
	if expiresAt.After(e.expiresAt) {
		e.expiresAt = expiresAt
	}
	return e.ctrl
}

// Len reports the number of live controllers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// Remove drops the controller for loginID and stops its timer.
func (r *Registry) Remove(loginID string) {
	r.mu.Lock()
	e, ok := r.controllers[loginID]
	delete(r.controllers, loginID)
	r.mu.Unlock()

	if ok {
		e.ctrl.Close()
	}
}

// Sweep closes and drops every controller whose login expired before now.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var expired []*Controller
	for id, e := range r.controllers {
		if now.After(e.expiresAt) {
			expired = append(expired, e.ctrl)
			delete(r.controllers, id)
		}
	}
	r.mu.Unlock()

	for _, c := range expired {
		c.Close()
	}
	return len(expired)
}

// Close stops every timer.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.controllers {
		e.ctrl.Close()
		delete(r.controllers, id)
	}
}
