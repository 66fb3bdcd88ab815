package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"roomchat/observability"
	"roomchat/runtime"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

// pipeConn is an in-memory LineConn. Lines written with Type are read by the
// processor; lines the processor sends are collected in out.
type pipeConn struct {
	id   string
	in   chan string
	out  chan string
	once sync.Once
}

func newPipeConn() *pipeConn {
	return &pipeConn{
		id:  uuid.NewString(),
		in:  make(chan string, 16),
		out: make(chan string, 512),
	}
}

func (c *pipeConn) ReadLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-c.in:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *pipeConn) Send(ctx context.Context, line string) error {
	select {
	case c.out <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *pipeConn) RemoteAddr() string { return c.id }

func (c *pipeConn) Type(line string) { c.in <- line }

// Hangup simulates the client closing its socket.
func (c *pipeConn) Hangup() { c.once.Do(func() { close(c.in) }) }

func (c *pipeConn) next(t *testing.T) string {
	t.Helper()
	select {
	case line := <-c.out:
		return line
	case <-time.After(waitTimeout):
		t.Fatalf("no line received on %s", c.id)
		return ""
	}
}

func (c *pipeConn) expect(t *testing.T, want ...string) {
	t.Helper()
	for _, line := range want {
		require.Equal(t, line, c.next(t))
	}
}

// skipUntil drops lines until want shows up.
func (c *pipeConn) skipUntil(t *testing.T, want string) {
	t.Helper()
	for {
		if c.next(t) == want {
			return
		}
	}
}

func (c *pipeConn) expectSilence(t *testing.T) {
	t.Helper()
	select {
	case line := <-c.out:
		t.Fatalf("unexpected line %q", line)
	case <-time.After(50 * time.Millisecond):
	}
}

type harness struct {
	sessions  *runtime.SessionRegistry
	rooms     *runtime.RoomDirectory
	processor *Processor
	ctx       context.Context
	wg        sync.WaitGroup
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	monitoring := observability.NewMonitoringManager(prometheus.NewRegistry())
	sessions := runtime.NewSessionRegistry()
	rooms := runtime.NewRoomDirectory(sessions)
	router := runtime.NewRouter(log, sessions, rooms, monitoring, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		sessions:  sessions,
		rooms:     rooms,
		processor: NewProcessor(log, sessions, rooms, router, monitoring, 16),
		ctx:       ctx,
	}
	t.Cleanup(func() {
		cancel()
		h.wg.Wait()
	})
	return h
}

// connect starts serving a new connection and consumes the prompt.
func (h *harness) connect(t *testing.T) *pipeConn {
	t.Helper()
	conn := newPipeConn()
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.processor.Serve(h.ctx, conn)
	}()
	conn.expect(t, "Please enter a nickname.")
	return conn
}

// login connects and registers nickname, consuming the greeting.
func (h *harness) login(t *testing.T, nickname string) *pipeConn {
	t.Helper()
	conn := h.connect(t)
	conn.Type(nickname)
	conn.expect(t, fmt.Sprintf("Welcome %s!", nickname))
	conn.skipUntil(t, "Type /help to show this list again.")
	return conn
}

func (h *harness) waitUnregistered(t *testing.T, nickname string) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, ok := h.sessions.Lookup(nickname)
		return !ok
	}, waitTimeout, 5*time.Millisecond)
}

func TestProcessor_DuplicateNickname(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	defer alice.Hangup()

	// When a second client asks for alice
	second := h.connect(t)
	second.Type("alice")

	// Then it is re-prompted and can pick another nickname
	second.expect(t, "Error: duplicate nickname. Please enter another nickname.")
	second.Type("bob")
	second.expect(t, "Welcome bob!")
	require.ElementsMatch(t, []string{"alice", "bob"}, h.sessions.ListAll())
}

func TestProcessor_InvalidNickname(t *testing.T) {
	h := newHarness(t)
	conn := h.connect(t)

	conn.Type("   ")
	conn.expect(t, "Error: invalid nickname. Please enter another nickname without spaces.")
	conn.Type("two words")
	conn.expect(t, "Error: invalid nickname. Please enter another nickname without spaces.")
	conn.Type("  carol ")
	conn.expect(t, "Welcome carol!")
}

func TestProcessor_HangupBeforeRegistration(t *testing.T) {
	h := newHarness(t)
	conn := h.connect(t)

	conn.Hangup()

	conn.expectSilence(t)
	require.Zero(t, h.sessions.Count())
}

func TestProcessor_CreateJoinBroadcast(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")
	carol := h.login(t, "carol")

	// alice creates room 1
	alice.Type("/create")
	alice.expect(t, "room 1 entered")

	// bob joins it and alice is told
	bob.Type("/join 1")
	bob.expect(t, "room 1 entered")
	alice.expect(t, "bob entered the room.")

	// alice talks: both members receive, carol does not
	alice.Type("hello")
	alice.expect(t, "alice : hello")
	bob.expect(t, "alice : hello")
	carol.expectSilence(t)

	// creating again is refused
	alice.Type("/create")
	alice.expect(t, "You are already in a room and cannot create a new one.")

	// joining while in a room is refused
	bob.Type("/join 1")
	bob.expect(t, "You cannot join another room while in a room. Leave the current room first with /exit.")

	// being in a room is reported before a bad room number
	bob.Type("/join abc")
	bob.expect(t, "You cannot join another room while in a room. Leave the current room first with /exit.")
}

func TestProcessor_JoinErrors(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")

	alice.Type("/join abc")
	alice.expect(t, "Please check the room number and try again.")

	alice.Type("/join 7")
	alice.expect(t, "room 7 not found")

	alice.Type("/join ")
	alice.expect(t, "Please check the room number and try again.")

	_, ok := h.rooms.CurrentRoom("alice")
	require.False(t, ok)
}

func TestProcessor_Whisper(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")

	alice.Type("/whisper bob hi there")
	bob.expect(t, "Whisper from alice : hi there")

	// Unknown target and malformed whispers produce nothing at all
	alice.Type("/whisper nobody hi")
	alice.Type("/whisper bob")
	alice.Type("/list")
	alice.expect(t, "========== Open rooms ==========", "================================")
	bob.expectSilence(t)
}

func TestProcessor_ListCommands(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")

	alice.Type("/roomusers")
	alice.expect(t, "You are not in a room.")

	alice.Type("/create")
	alice.expect(t, "room 1 entered")
	bob.Type("/create")
	bob.expect(t, "room 2 entered")

	alice.Type("/list")
	alice.expect(t, "========== Open rooms ==========", "room 1", "room 2", "================================")

	alice.Type("/users")
	alice.expect(t, "Connected users", "alice", "bob")

	alice.Type("/roomusers")
	alice.expect(t, "Users in room 1", "alice")

	alice.Type("/help")
	alice.skipUntil(t, "Type /help to show this list again.")
}

func TestProcessor_ExitDeletesEmptyRoom(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")

	alice.Type("/create")
	alice.expect(t, "room 1 entered")
	bob.Type("/join 1")
	bob.expect(t, "room 1 entered")
	alice.expect(t, "bob entered the room.")

	// bob leaves, alice is told
	bob.Type("/exit")
	bob.expect(t, "room 1 left")
	alice.expect(t, "bob left the room.")

	// exiting again only yields a notice
	bob.Type("/exit")
	bob.expect(t, "You are not in a room.")

	// the last member leaves and the room disappears
	alice.Type("/exit")
	alice.expect(t, "room 1 left")

	carol := h.login(t, "carol")
	carol.Type("/list")
	carol.expect(t, "========== Open rooms ==========", "================================")

	// messages from a roomless user go nowhere
	bob.Type("is anyone here?")
	alice.expectSilence(t)
	bob.expectSilence(t)
}

func TestProcessor_Bye(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")

	alice.Type("/create")
	alice.expect(t, "room 1 entered")
	bob.Type("/join 1")
	bob.expect(t, "room 1 entered")
	alice.expect(t, "bob entered the room.")

	bob.Type("/bye")
	bob.expect(t, "room 1 left")
	alice.expect(t, "bob left the room.")
	h.waitUnregistered(t, "bob")

	// the nickname is free again
	again := h.connect(t)
	again.Type("bob")
	again.expect(t, "Welcome bob!")
}

func TestProcessor_HangupCleansUp(t *testing.T) {
	h := newHarness(t)
	alice := h.login(t, "alice")
	bob := h.login(t, "bob")

	alice.Type("/create")
	alice.expect(t, "room 1 entered")
	bob.Type("/join 1")
	bob.expect(t, "room 1 entered")
	alice.expect(t, "bob entered the room.")

	// When bob's socket goes away without /bye
	bob.Hangup()

	// Then he leaves the room and releases his nickname
	alice.expect(t, "bob left the room.")
	h.waitUnregistered(t, "bob")
	members, ok := h.rooms.ListMembers(1)
	require.True(t, ok)
	require.Equal(t, []string{"alice"}, members)

	// And when alice also drops, room 1 is gone
	alice.Hangup()
	h.waitUnregistered(t, "alice")
	require.Empty(t, h.rooms.ListRooms())
}
