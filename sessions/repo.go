package sessions

// Store persists the session across the application's lifetime.
// No operation returns an error: absence is a normal, checked state,
// and write failures are the store's problem to log, never the
// caller's to handle.
type Store interface {
	// Set persists all session fields atomically from the caller's
	// perspective; a concurrent Get never observes a partial write.
	Set(session Session)
	// Get returns the stored session. ok is false when the session is
	// absent or not Valid.
	Get() (session Session, ok bool)
	// Clear removes all session fields. Clearing an empty store is a no-op.
	Clear()
}
