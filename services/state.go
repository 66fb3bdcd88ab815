package services

import (
	"roomchat/domain"

	"github.com/google/uuid"
)

// Phase is where a connection stands in its lifecycle.
type Phase int

const (
	Connecting Phase = iota
	Roomless
	InRoom
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Connecting:
		return "connecting"
	case Roomless:
		return "roomless"
	case InRoom:
		return "in_room"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// connState is owned by the goroutine serving one connection and is passed
// by value through the command loop. Transitions return a new value.
type connState struct {
	sessionID string
	remote    string
	nickname  string
	phase     Phase
	roomID    domain.RoomID
}

func newConnState(remote string) connState {
	return connState{
		sessionID: uuid.NewString(),
		remote:    remote,
		phase:     Connecting,
	}
}

func (s connState) registered(nickname string) connState {
	s.nickname = nickname
	s.phase = Roomless
	return s
}

func (s connState) enterRoom(roomID domain.RoomID) connState {
	s.phase = InRoom
	s.roomID = roomID
	return s
}

func (s connState) leaveRoom() connState {
	if s.phase == InRoom {
		s.phase = Roomless
	}
	s.roomID = 0
	return s
}

func (s connState) terminate() connState {
	s.phase = Terminated
	return s
}
