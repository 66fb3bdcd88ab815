package domain

import (
	"roomchat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{name: "Bye", input: "/bye", expected: ByeCommand{}},
		{name: "List", input: "/list", expected: ListRoomsCommand{}},
		{name: "Create", input: "/create", expected: CreateRoomCommand{}},
		{name: "Exit", input: "/exit", expected: ExitRoomCommand{}},
		{name: "Users", input: "/users", expected: ListUsersCommand{}},
		{name: "Room users", input: "/roomusers", expected: ListRoomUsersCommand{}},
		{name: "Help", input: "/help", expected: HelpCommand{}},
		{name: "Join", input: "/join 12", expected: JoinRoomCommand{Arg: "12"}},
		{name: "Join extra spaces", input: "/join   4  x", expected: JoinRoomCommand{Arg: "4"}},
		{name: "Join without argument", input: "/join ", expected: JoinRoomCommand{}},
		{name: "Join without space is a message", input: "/join", expected: PostMessageCommand{Content: "/join"}},
		{name: "Case sensitive", input: "/BYE", expected: PostMessageCommand{Content: "/BYE"}},
		{name: "Trailing text is a message", input: "/list all", expected: PostMessageCommand{Content: "/list all"}},
		{name: "Plain message", input: "hello", expected: PostMessageCommand{Content: "hello"}},
		{name: "Empty line", input: "", expected: PostMessageCommand{Content: ""}},
		{
			name:     "Whisper",
			input:    "/whisper bob hi there",
			expected: WhisperCommand{Target: "bob", Text: "hi there"},
		},
		{
			name:     "Whisper without text",
			input:    "/whisper bob",
			expected: WhisperCommand{Malformed: true},
		},
		{
			name:     "Whisper with empty text",
			input:    "/whisper bob ",
			expected: WhisperCommand{Target: "bob", Malformed: true},
		},
		{
			name:     "Whisper alone",
			input:    "/whisper",
			expected: WhisperCommand{Malformed: true},
		},
		{
			name:     "Whisper with empty target",
			input:    "/whisper  bob hi",
			expected: WhisperCommand{Text: "bob hi", Malformed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseCommand(tt.input))
		})
	}
}

func TestJoinRoomCommand_RoomID(t *testing.T) {
	req := require.New(t)

	id, err := JoinRoomCommand{Arg: "7"}.RoomID()
	req.NoError(err)
	req.Equal(RoomID(7), id)

	_, err = JoinRoomCommand{Arg: "seven"}.RoomID()
	req.ErrorIs(err, errors.ErrMalformedRoomNumber)

	_, err = JoinRoomCommand{}.RoomID()
	req.ErrorIs(err, errors.ErrMalformedRoomNumber)
}
