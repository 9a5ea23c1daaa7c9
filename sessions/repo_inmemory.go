package sessions

import "sync"

var _ Store = (*MemStore)(nil)

// MemStore is a process-local Store with no persistence. Used by tests
// and as a fallback when the data folder is unavailable.
type MemStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (ms *MemStore) Set(session Session) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = session
	ms.present = true
}

func (ms *MemStore) Get() (Session, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if !ms.present || !ms.session.Valid() {
		return Session{}, false
	}
	return ms.session, true
}

func (ms *MemStore) Clear() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = Session{}
	ms.present = false
}
