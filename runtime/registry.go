package runtime

import (
	"roomchat/contract"
	"roomchat/errors"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// SessionRegistry maps live nicknames to their outbound sink.
// A nickname is held by at most one session at a time.
//
// Lock order: when both are needed, RoomDirectory.mu is taken before
// SessionRegistry.mu. The registry never calls into the directory.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]contract.Sink // map participant -> Sink
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]contract.Sink),
	}
}

// Register reserves the nickname for sink. The test and the insert happen
// under one lock, so among concurrent callers with the same nickname exactly
// one succeeds; the others get ErrNicknameTaken.
func (r *SessionRegistry) Register(nickname string, sink contract.Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[nickname]; ok {
		return errors.ErrNicknameTaken
	}
	r.sessions[nickname] = sink
	return nil
}

// Unregister releases the nickname. Unknown nicknames are ignored.
func (r *SessionRegistry) Unregister(nickname string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, nickname)
}

func (r *SessionRegistry) Lookup(nickname string) (contract.Sink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sink, ok := r.sessions[nickname]
	return sink, ok
}

// ListAll returns a sorted snapshot of connected nicknames.
func (r *SessionRegistry) ListAll() []string {
	r.mu.RLock()
	nicknames := lo.Keys(r.sessions)
	r.mu.RUnlock()

	sort.Strings(nicknames)
	return nicknames
}

func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// lookupAll resolves nicknames to sinks in one critical section and skips
// nicknames that are no longer registered.
func (r *SessionRegistry) lookupAll(nicknames []string) []contract.Recipient {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipients := make([]contract.Recipient, 0, len(nicknames))
	for _, nickname := range nicknames {
		if sink, ok := r.sessions[nickname]; ok {
			recipients = append(recipients, contract.Recipient{Nickname: nickname, Sink: sink})
		}
	}
	return recipients
}
