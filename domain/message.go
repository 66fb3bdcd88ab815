// Package domain contains core concepts of the chat system.
// This file defines every line the server sends to a client.
// Server lines are plain text with no envelope.
package domain

import "fmt"

const (
	NicknamePrompt        = "Please enter a nickname."
	NicknameTakenNotice   = "Error: duplicate nickname. Please enter another nickname."
	NicknameInvalidNotice = "Error: invalid nickname. Please enter another nickname without spaces."
	CreateInRoomNotice    = "You are already in a room and cannot create a new one."
	JoinInRoomNotice      = "You cannot join another room while in a room. Leave the current room first with /exit."
	MalformedRoomNotice   = "Please check the room number and try again."
	NotInRoomNotice       = "You are not in a room."
	RoomListHeader        = "========== Open rooms =========="
	RoomListFooter        = "================================"
	UserListHeader        = "Connected users"
)

func WelcomeNotice(nickname string) string {
	return fmt.Sprintf("Welcome %s!", nickname)
}

func RoomEnteredNotice(id RoomID) string {
	return fmt.Sprintf("room %d entered", id)
}

func RoomLeftNotice(id RoomID) string {
	return fmt.Sprintf("room %d left", id)
}

func RoomNotFoundNotice(id RoomID) string {
	return fmt.Sprintf("room %d not found", id)
}

func RoomLine(id RoomID) string {
	return fmt.Sprintf("room %d", id)
}

func RoomUsersHeader(id RoomID) string {
	return fmt.Sprintf("Users in room %d", id)
}

func MemberJoinedNotice(nickname string) string {
	return fmt.Sprintf("%s entered the room.", nickname)
}

func MemberLeftNotice(nickname string) string {
	return fmt.Sprintf("%s left the room.", nickname)
}

func ArrivalNotice(nickname string) string {
	return fmt.Sprintf("%s has connected.", nickname)
}

func ChatLine(sender, text string) string {
	return fmt.Sprintf("%s : %s", sender, text)
}

func WhisperLine(sender, text string) string {
	return fmt.Sprintf("Whisper from %s : %s", sender, text)
}

const HelpFooter = "Type /help to show this list again."
