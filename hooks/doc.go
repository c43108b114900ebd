// Package hooks implements the named hook registry (§6): callbacks
// registered under well-known keys at the event boundaries of
// interactive operations. Hooks are registered with a caller-supplied
// unique ID and fire in reverse-registration order (most recently
// registered first); a hook that returns an error is logged nowhere and
// swallowed — hook failures must never corrupt an edit (§7).
package hooks
