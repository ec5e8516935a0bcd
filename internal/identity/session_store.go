package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type sessionState struct {
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id"`
	PendingReturnTo string `json:"pending_return_to,omitempty"`
}

// SessionStore abstracts persistence for identity session state.
type SessionStore interface {
	Load() (sessionState, error)
	Save(sessionState) error
}

// FileSessionStore writes session state to a JSON file on disk.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore builds a FileSessionStore rooted at the provided path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load reads session state from disk. A missing file resolves to an empty state.
func (s *FileSessionStore) Load() (sessionState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return sessionState{}, nil
		}
		return sessionState{}, fmt.Errorf("read session state: %w", err)
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return sessionState{}, fmt.Errorf("decode session state: %w", err)
	}
	return state, nil
}

// Save persists session state to disk with restricted permissions.
func (s *FileSessionStore) Save(state sessionState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure session directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// FileProvider resolves identity from a session store. A store that loads
// successfully resolves the snapshot immediately; a load failure leaves the
// provider anonymous rather than stuck loading.
type FileProvider struct {
	store    SessionStore
	snapshot Snapshot
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider builds a provider backed by the given store.
func NewFileProvider(store SessionStore) *FileProvider {
	p := &FileProvider{
		store:    store,
		snapshot: Snapshot{Loading: true},
	}
	state, err := store.Load()
	if err != nil {
		p.snapshot = Snapshot{}
		return p
	}
	p.snapshot = Snapshot{
		Authenticated: state.UserID != "",
		UserID:        state.UserID,
	}
	return p
}

// Snapshot returns the resolved identity state.
func (p *FileProvider) Snapshot() Snapshot {
	return p.snapshot
}

// LoginWithRedirect records the pending return location so an interactive
// flow can resume there. It never flips the snapshot; only a completed
// login (BeginSession) authenticates.
func (p *FileProvider) LoginWithRedirect(opts LoginOptions) error {
	state, err := p.store.Load()
	if err != nil {
		return fmt.Errorf("load session state: %w", err)
	}
	state.PendingReturnTo = opts.ReturnTo
	if state.SessionID == "" {
		state.SessionID = uuid.NewString()
	}
	if err := p.store.Save(state); err != nil {
		return fmt.Errorf("record login redirect: %w", err)
	}
	return nil
}

// BeginSession records a completed login for the given user identifier.
func (p *FileProvider) BeginSession(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("user id must not be empty")
	}
	state := sessionState{
		SessionID: uuid.NewString(),
		UserID:    userID,
	}
	if err := p.store.Save(state); err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	p.snapshot = Snapshot{Authenticated: true, UserID: userID}
	return nil
}

// EndSession clears the stored session.
func (p *FileProvider) EndSession() error {
	if err := p.store.Save(sessionState{}); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	p.snapshot = Snapshot{}
	return nil
}

// PendingReturnTo reports the location recorded by the last login redirect.
func (p *FileProvider) PendingReturnTo() (string, error) {
	state, err := p.store.Load()
	if err != nil {
		return "", err
	}
	return state.PendingReturnTo, nil
}
