//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"roomchat/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is only used for logging.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sink sends one text line to one client.
// Implementations serialize their own writes: one Send is atomic
// with respect to any other Send on the same sink.
type Sink interface {
	Send(ctx context.Context, line string) error
}

// LineConn is what a transport hands to the command processor.
type LineConn interface {
	Sink
	ReadLine(ctx context.Context) (string, error)
	RemoteAddr() string
}

// Recipient is a member resolved to its sink at snapshot time.
type Recipient struct {
	Nickname string
	Sink     Sink
}

type ISessionRegistry interface {
	Register(nickname string, sink Sink) error
	Unregister(nickname string)
	Lookup(nickname string) (Sink, bool)
	ListAll() []string
	Count() int
}

type IRoomDirectory interface {
	CreateRoom(nickname string) (domain.RoomID, error)
	JoinRoom(nickname string, roomID domain.RoomID) ([]string, error)
	LeaveRoom(nickname string) (domain.RoomID, []string, bool)
	ListRooms() []domain.RoomID
	ListMembers(roomID domain.RoomID) ([]string, bool)
	CurrentRoom(nickname string) (domain.RoomID, bool)
	Recipients(roomID domain.RoomID, exclude string) []Recipient
}

type IRouter interface {
	BroadcastToRoom(ctx context.Context, sender, text string)
	Whisper(ctx context.Context, sender, target, text string) error
	NotifyRoom(ctx context.Context, roomID domain.RoomID, text, exclude string)
	SystemNotice(ctx context.Context, nickname, text string) error
	Announce(ctx context.Context, sender, text string)
}

// Censor rewrites forbidden words and reports which ones were found.
type Censor interface {
	Censor(original string) (string, []string)
}
