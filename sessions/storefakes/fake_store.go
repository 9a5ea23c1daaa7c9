package storefakes

import (
	"sync"

	"github.com/nextsteps/nextsteps-cli/sessions"
)

var _ sessions.Store = (*FakeStore)(nil)

// FakeStore is an in-memory sessions.Store that records calls for
// assertions in tests.
type FakeStore struct {
	mu         sync.Mutex
	session    sessions.Session
	present    bool
	SetCalls   []sessions.Session
	GetCalls   int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed installs a session without recording a Set call.
func (fs *FakeStore) Seed(session sessions.Session) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.session = session
	fs.present = true
}

func (fs *FakeStore) Set(session sessions.Session) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.SetCalls = append(fs.SetCalls, session)
	fs.session = session
	fs.present = true
}

func (fs *FakeStore) Get() (sessions.Session, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.GetCalls++
	if !fs.present || !fs.session.Valid() {
		return sessions.Session{}, false
	}
	return fs.session, true
}

func (fs *FakeStore) Clear() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.ClearCalls++
	fs.session = sessions.Session{}
	fs.present = false
}
