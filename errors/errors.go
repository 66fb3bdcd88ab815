package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrNicknameTaken       = fmt.Errorf("nickname already taken")
	ErrInvalidNickname     = fmt.Errorf("invalid nickname")
	ErrAlreadyInRoom       = fmt.Errorf("already in a room")
	ErrRoomNotFound        = fmt.Errorf("room not found")
	ErrMalformedRoomNumber = fmt.Errorf("malformed room number")
	ErrMalformedWhisper    = fmt.Errorf("malformed whisper")
	ErrRecipientOffline    = fmt.Errorf("recipient offline")
	ErrSinkClosed          = fmt.Errorf("sink closed")
	ErrLineTooLong         = fmt.Errorf("line too long")
)
