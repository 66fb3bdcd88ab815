package runtime

import (
	"context"
	goerrors "errors"
	"fmt"
	"roomchat/errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps every line it receives.
type recordingSink struct {
	mu    sync.Mutex
	lines []string
	err   error
}

func (s *recordingSink) Send(_ context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func TestSessionRegistry_Register_Lookup(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	nickname := uuid.NewString()
	sink := &recordingSink{}

	// Given no user is connected
	req.Zero(registry.Count())
	req.Empty(registry.ListAll())

	// When a participant registers
	req.NoError(registry.Register(nickname, sink))

	// Then the sink is resolvable
	found, ok := registry.Lookup(nickname)
	req.True(ok)
	req.Same(sink, found)
	req.Equal([]string{nickname}, registry.ListAll())
	req.Equal(1, registry.Count())
}

func TestSessionRegistry_Register_Duplicate(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	first := &recordingSink{}

	req.NoError(registry.Register("alice", first))

	// When another session asks for the same nickname
	err := registry.Register("alice", &recordingSink{})

	// Then it is refused and the first session keeps the nickname
	req.ErrorIs(err, errors.ErrNicknameTaken)
	found, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(first, found)

	// When the winner leaves the nickname is free again
	registry.Unregister("alice")
	req.NoError(registry.Register("alice", &recordingSink{}))
}

func TestSessionRegistry_Unregister_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	req.NoError(registry.Register("bob", &recordingSink{}))

	registry.Unregister("bob")
	registry.Unregister("bob")
	registry.Unregister("nobody")

	_, ok := registry.Lookup("bob")
	req.False(ok)
	req.Zero(registry.Count())
}

func TestSessionRegistry_ListAll_Sorted(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	for _, nickname := range []string{"carol", "alice", "bob"} {
		req.NoError(registry.Register(nickname, &recordingSink{}))
	}

	req.Equal([]string{"alice", "bob", "carol"}, registry.ListAll())
}

func TestSessionRegistry_ConcurrentRegister_ExactlyOneWins(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	const contenders = 64
	var wins, taken atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := registry.Register("alice", &recordingSink{})
			switch {
			case err == nil:
				wins.Add(1)
			case goerrors.Is(err, errors.ErrNicknameTaken):
				taken.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	req.Equal(int32(1), wins.Load())
	req.Equal(int32(contenders-1), taken.Load())
}

func TestSessionRegistry_ConcurrentConnectDisconnect(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nickname := fmt.Sprintf("user-%d", i)
			if err := registry.Register(nickname, &recordingSink{}); err != nil {
				t.Error(err)
			}
			_ = registry.ListAll()
			if i%2 == 0 {
				registry.Unregister(nickname)
			}
		}(i)
	}
	wg.Wait()

	req.Equal(25, registry.Count())
	req.Len(registry.ListAll(), 25)
}
