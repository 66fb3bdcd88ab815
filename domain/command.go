package domain

import (
	"roomchat/errors"
	"strconv"
	"strings"
)

// Command is one parsed input line from a registered client.
type Command interface {
	Name() string
}

type ByeCommand struct{}

type ListRoomsCommand struct{}

type CreateRoomCommand struct{}

type ExitRoomCommand struct{}

type ListUsersCommand struct{}

type ListRoomUsersCommand struct{}

type HelpCommand struct{}

// JoinRoomCommand keeps the raw argument; RoomID reports whether it parses.
type JoinRoomCommand struct {
	Arg string
}

// WhisperCommand is a private message. Malformed is set when the line
// carried no target token or an empty text.
type WhisperCommand struct {
	Target    string
	Text      string
	Malformed bool
}

// PostMessageCommand is any line that is not a command.
type PostMessageCommand struct {
	Content string
}

func (ByeCommand) Name() string           { return "bye" }
func (ListRoomsCommand) Name() string     { return "list" }
func (CreateRoomCommand) Name() string    { return "create" }
func (ExitRoomCommand) Name() string      { return "exit" }
func (ListUsersCommand) Name() string     { return "users" }
func (ListRoomUsersCommand) Name() string { return "roomusers" }
func (HelpCommand) Name() string          { return "help" }
func (JoinRoomCommand) Name() string      { return "join" }
func (WhisperCommand) Name() string       { return "whisper" }
func (PostMessageCommand) Name() string   { return "message" }

func (c JoinRoomCommand) RoomID() (RoomID, error) {
	id, err := strconv.Atoi(c.Arg)
	if err != nil {
		return 0, errors.ErrMalformedRoomNumber
	}
	return RoomID(id), nil
}

const (
	cmdBye       = "/bye"
	cmdWhisper   = "/whisper"
	cmdList      = "/list"
	cmdCreate    = "/create"
	cmdJoin      = "/join "
	cmdExit      = "/exit"
	cmdUsers     = "/users"
	cmdRoomUsers = "/roomusers"
	cmdHelp      = "/help"
)

// ParseCommand maps a raw line to a Command. Matching is case-sensitive:
// most commands must match the whole line, /whisper and "/join " are
// prefixes. Anything else is a plain message.
func ParseCommand(line string) Command {
	switch {
	case line == cmdBye:
		return ByeCommand{}
	case strings.HasPrefix(line, cmdWhisper):
		return parseWhisper(line)
	case line == cmdList:
		return ListRoomsCommand{}
	case line == cmdCreate:
		return CreateRoomCommand{}
	case strings.HasPrefix(line, cmdJoin):
		return parseJoin(line)
	case line == cmdExit:
		return ExitRoomCommand{}
	case line == cmdUsers:
		return ListUsersCommand{}
	case line == cmdRoomUsers:
		return ListRoomUsersCommand{}
	case line == cmdHelp:
		return HelpCommand{}
	default:
		return PostMessageCommand{Content: line}
	}
}

func parseJoin(line string) JoinRoomCommand {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return JoinRoomCommand{}
	}
	return JoinRoomCommand{Arg: fields[1]}
}

// parseWhisper splits on the first two single spaces:
// "/whisper <target> <text>". The text keeps its inner spacing.
func parseWhisper(line string) WhisperCommand {
	first := strings.IndexByte(line, ' ')
	if first == -1 {
		return WhisperCommand{Malformed: true}
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, ' ')
	if second == -1 {
		return WhisperCommand{Malformed: true}
	}
	target, text := rest[:second], rest[second+1:]
	if target == "" || text == "" {
		return WhisperCommand{Target: target, Text: text, Malformed: true}
	}
	return WhisperCommand{Target: target, Text: text}
}
