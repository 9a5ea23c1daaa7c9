package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const sessionFileName = "session.json"

var _ Store = (*FileStore)(nil)

// FileStore persists the session as a small JSON file under the data
// folder, readable across runs until explicitly cleared. Field keys
// are stable (userId, userEmail, token); do not rename them.
type FileStore struct {
	path   string
	logger zerolog.Logger
	mu     sync.Mutex
}

// NewFileStore creates a FileStore rooted at folder. The folder is
// created if missing; failure to create it is logged and subsequent
// reads simply report absence.
func NewFileStore(folder string, logger zerolog.Logger) *FileStore {
	if err := os.MkdirAll(folder, 0o700); err != nil {
		logger.Warn().Err(err).Str("folder", folder).Msg("session folder unavailable")
	}
	return &FileStore{
		path:   filepath.Join(folder, sessionFileName),
		logger: logger,
	}
}

func (fs *FileStore) Set(session Session) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	encoded, err := json.Marshal(session)
	if err != nil {
		fs.logger.Warn().Err(err).Msg("session encode failed")
		return
	}
	// Write-then-rename so a reader never sees a torn session file.
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		fs.logger.Warn().Err(err).Msg("session write failed")
		return
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		fs.logger.Warn().Err(err).Msg("session rename failed")
	}
}

func (fs *FileStore) Get() (Session, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn().Err(err).Msg("session read failed")
		}
		return Session{}, false
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		fs.logger.Warn().Err(err).Msg("session file corrupt")
		return Session{}, false
	}
	if !session.Valid() {
		return Session{}, false
	}
	return session, true
}

func (fs *FileStore) Clear() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		fs.logger.Warn().Err(err).Msg("session clear failed")
	}
}
