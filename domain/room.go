package domain

import (
	"sort"
)

type RoomID int

// Room is a set of nicknames sharing a broadcast scope.
// It is not safe for concurrent use; the room directory guards it.
type Room struct {
	ID      RoomID
	members map[string]struct{}
}

func NewRoom(id RoomID) *Room {
	return &Room{
		ID:      id,
		members: make(map[string]struct{}),
	}
}

func (r *Room) Add(nickname string) {
	r.members[nickname] = struct{}{}
}

func (r *Room) Remove(nickname string) {
	delete(r.members, nickname)
}

func (r *Room) Has(nickname string) bool {
	_, ok := r.members[nickname]
	return ok
}

func (r *Room) Len() int {
	return len(r.members)
}

func (r *Room) IsEmpty() bool {
	return len(r.members) == 0
}

// Members returns a sorted copy of the member set.
func (r *Room) Members() []string {
	members := make([]string, 0, len(r.members))
	for nickname := range r.members {
		members = append(members, nickname)
	}
	sort.Strings(members)
	return members
}
