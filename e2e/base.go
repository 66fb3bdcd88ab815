package e2e

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net"
	"roomchat/internal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const helpFooter = "Type /help to show this list again."

// BaseChatSuite talks to a chat server over plain TCP. Without CHAT_ADDR it
// boots an in-process server on a random port for the whole suite.
type BaseChatSuite struct {
	suite.Suite
	Config Config
	addr   string
	cancel context.CancelFunc
	done   chan error
}

// SetupSuite loads the environment configuration and starts the server if needed
func (s *BaseChatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ChatAddr != "" {
		s.addr = s.Config.ChatAddr
		return
	}

	orchestrator, err := internal.NewOrchestrator(logs.GetLoggerFromLevel(slog.LevelWarn), internal.Config{
		Host:              "127.0.0.1",
		LogLevel:          "WARN",
		SinkTimeout:       time.Second,
		MaxLineLength:     4096,
		MaxNicknameLength: 32,
		CharReplacement:   "*",
		HeartbeatInterval: time.Second,
		RestartInterval:   50 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.Require().NoError(orchestrator.Listen())
	s.addr = orchestrator.ChatAddr()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan error, 1)
	go func() { s.done <- orchestrator.Start(ctx) }()
}

func (s *BaseChatSuite) TearDownSuite() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	select {
	case err := <-s.done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("in-process server did not stop")
	}
}

// Step prints a colorized header for a scenario step in the test logs
func (s *BaseChatSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Client is one line-protocol connection.
type Client struct {
	s        *BaseChatSuite
	Nickname string
	conn     net.Conn
	reader   *bufio.Reader
}

// Dial opens a raw connection and consumes the nickname prompt.
func (s *BaseChatSuite) Dial() *Client {
	conn, err := net.DialTimeout("tcp", s.addr, s.Config.ReadTimeout)
	s.Require().NoError(err, "Failed to connect to chat server at "+s.addr)
	s.T().Cleanup(func() { _ = conn.Close() })
	c := &Client{s: s, conn: conn, reader: bufio.NewReader(conn)}
	c.Expect("Please enter a nickname.")
	return c
}

// Login dials and registers nickname, consuming the whole greeting.
func (s *BaseChatSuite) Login(nickname string) *Client {
	c := s.Dial()
	c.Send(nickname)
	c.Expect(fmt.Sprintf("Welcome %s!", nickname))
	c.SkipUntil(helpFooter)
	c.Nickname = nickname
	return c
}

// Unique suffixes nickname so suites can share a live server.
func Unique(nickname string) string {
	return nickname + "_" + uuid.NewString()[:8]
}

func (c *Client) Send(line string) {
	_, err := fmt.Fprintf(c.conn, "%s\n", line)
	c.s.Require().NoError(err)
}

func (c *Client) Read() string {
	c.s.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(c.s.Config.ReadTimeout)))
	line, err := c.reader.ReadString('\n')
	c.s.Require().NoError(err, "waiting for a line as %s", c.Nickname)
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}

func (c *Client) Expect(lines ...string) {
	for _, want := range lines {
		c.s.Require().Equal(want, c.Read())
	}
}

func (c *Client) SkipUntil(want string) {
	for c.Read() != want {
	}
}

// ExpectNothing checks that no line arrives within a short window.
func (c *Client) ExpectNothing() {
	c.s.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond)))
	line, err := c.reader.ReadString('\n')
	c.s.Require().Error(err, "unexpected line %q for %s", line, c.Nickname)
	// a timed out bufio read leaves no partial state worth keeping
	c.reader.Reset(c.conn)
}

// ExpectClosed waits for the server to close the connection.
func (c *Client) ExpectClosed() {
	c.s.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(c.s.Config.ReadTimeout)))
	_, err := c.reader.ReadString('\n')
	c.s.Require().Error(err)
}

func (c *Client) Close() {
	_ = c.conn.Close()
}

// CreateRoom sends /create and returns the id the server picked.
func (c *Client) CreateRoom() int {
	c.Send("/create")
	var id int
	line := c.Read()
	_, err := fmt.Sscanf(line, "room %d entered", &id)
	c.s.Require().NoError(err, "unexpected reply to /create: %q", line)
	return id
}

// ReadBlock reads lines from the current one up to and including last.
func (c *Client) ReadBlock(last string) []string {
	var lines []string
	for {
		line := c.Read()
		lines = append(lines, line)
		if line == last {
			return lines
		}
	}
}
