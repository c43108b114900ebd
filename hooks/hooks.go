package hooks

// Key names a hook boundary exposed by the core at the event boundaries
// of interactive operations.
type Key string

// Well-known hook keys (§6).
const (
	MouseClickPre  Key = "MOUSECLICKPRE"
	MouseClickPost Key = "MOUSECLICKPOST"
)

// Func is a hook callback. Its error return is diagnostic only: callers
// of Fire never see it, per §7 ("hook exceptions are swallowed").
type Func func(args ...interface{}) error

type registration struct {
	id string
	fn Func
}

// Registry holds hook registrations per Key, unique-ID addressed.
type Registry struct {
	byKey map[Key][]registration
}

// NewRegistry returns an empty hook Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[Key][]registration)}
}

// Register adds fn under key with the given unique id, replacing any
// existing registration sharing that id under that key. Complexity: O(n)
// in the number of hooks already registered under key.
func (r *Registry) Register(key Key, id string, fn Func) {
	regs := r.byKey[key]
	for i, reg := range regs {
		if reg.id == id {
			regs[i].fn = fn
			return
		}
	}
	r.byKey[key] = append(regs, registration{id: id, fn: fn})
}

// Unregister removes the hook registered under key with the given id.
// No-op if absent.
func (r *Registry) Unregister(key Key, id string) {
	regs := r.byKey[key]
	for i, reg := range regs {
		if reg.id == id {
			r.byKey[key] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Fire invokes every hook registered under key, most-recently-registered
// first, passing args through. Errors from individual hooks are
// swallowed: a failing hook never aborts the remaining hooks or the
// caller's edit.
func (r *Registry) Fire(key Key, args ...interface{}) {
	regs := r.byKey[key]
	for i := len(regs) - 1; i >= 0; i-- {
		func() {
			defer func() { _ = recover() }()
			_ = regs[i].fn(args...)
		}()
	}
}
