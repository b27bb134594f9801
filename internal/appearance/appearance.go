// Package appearance is the process-wide default-appearance registry.
//
// Components register default property values under a kind name
// ("ring", ...). A component consults the registry only when it has no
// explicit value of its own, and it does so at draw time, so changing a
// default after components exist is picked up on their next draw.
//
// The ambient tint is the environment's accent color: the last fallback for
// any tint that is neither set explicitly nor registered.
package appearance

import (
	"sync"

	"github.com/rileyhilliard/orbit/internal/paint"
)

// DefaultTint is the ambient tint before anything overrides it.
var DefaultTint = paint.RGB(0x5a, 0x56, 0xe0)

// Values holds default property values for one component kind.
// Nil fields mean "no default registered".
type Values struct {
	ProgressTint *paint.Color
	TrackTint    *paint.Color
}

type registry struct {
	mu      sync.RWMutex
	kinds   map[string]Values
	ambient paint.Color
}

var global = &registry{
	kinds:   make(map[string]Values),
	ambient: DefaultTint,
}

// Register replaces the default values for kind.
func Register(kind string, v Values) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.kinds[kind] = v
}

// Lookup returns the defaults registered for kind.
func Lookup(kind string) Values {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.kinds[kind]
}

// Unregister removes any defaults for kind.
func Unregister(kind string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	delete(global.kinds, kind)
}

// SetAmbientTint changes the environment tint.
func SetAmbientTint(c paint.Color) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.ambient = c
}

// AmbientTint returns the environment tint.
func AmbientTint() paint.Color {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.ambient
}

// Reset clears every registered kind and restores DefaultTint.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.kinds = make(map[string]Values)
	global.ambient = DefaultTint
}

// Proxy edits the defaults of a single kind, one property at a time.
type Proxy struct {
	kind string
}

// For returns the proxy for kind.
func For(kind string) Proxy {
	return Proxy{kind: kind}
}

// Kind returns the kind the proxy edits.
func (p Proxy) Kind() string {
	return p.kind
}

// SetProgressTint sets or (with nil) clears the default progress tint.
func (p Proxy) SetProgressTint(c *paint.Color) {
	global.mu.Lock()
	defer global.mu.Unlock()
	v := global.kinds[p.kind]
	v.ProgressTint = copyColor(c)
	global.kinds[p.kind] = v
}

// SetTrackTint sets or (with nil) clears the default track tint.
func (p Proxy) SetTrackTint(c *paint.Color) {
	global.mu.Lock()
	defer global.mu.Unlock()
	v := global.kinds[p.kind]
	v.TrackTint = copyColor(c)
	global.kinds[p.kind] = v
}

// Values returns the kind's current defaults.
func (p Proxy) Values() Values {
	return Lookup(p.kind)
}

func copyColor(c *paint.Color) *paint.Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
