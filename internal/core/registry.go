package core

import "sync"

// Registry maintains the player-to-connection binding. It knows nothing about
// rooms; the hub bridges the two by player id at disconnect time.
type Registry struct {
	mu       sync.RWMutex
	byPlayer map[string]*Client
	byHandle map[*Client]string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPlayer: make(map[string]*Client),
		byHandle: make(map[*Client]string),
	}
}

// Bind associates playerID with the client, replacing any prior binding for
// that player. A replaced handle is orphaned, not closed: it keeps its socket
// until the peer goes away on its own.
func (r *Registry) Bind(playerID string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byPlayer[playerID]; ok && prev != c {
		delete(r.byHandle, prev)
	}
	// A handle re-joining as a different player drops its old identity.
	if prevID, ok := r.byHandle[c]; ok && prevID != playerID {
		delete(r.byPlayer, prevID)
	}
	r.byPlayer[playerID] = c
	r.byHandle[c] = playerID
}

// Lookup returns the live handle bound to playerID, if any.
func (r *Registry) Lookup(playerID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byPlayer[playerID]
	return c, ok
}

// UnbindByHandle removes the binding owned by this exact handle and returns
// the player id it carried. A handle that was superseded by a reconnect, or
// that never joined, yields ok=false and leaves the registry untouched.
func (r *Registry) UnbindByHandle(c *Client) (playerID string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	playerID, ok = r.byHandle[c]
	if !ok {
		return "", false
	}
	delete(r.byHandle, c)
	delete(r.byPlayer, playerID)
	return playerID, true
}
