package runtime

import (
	"roomchat/contract"
	"roomchat/domain"
	"roomchat/errors"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// RoomDirectory owns every room and the nickname -> room reverse mapping.
// Both structures change together under mu, so a nickname is in a room's
// member set if and only if memberships points at that room.
//
// Lock order: mu is acquired before the session registry's lock
// (see Recipients). Nothing in this package acquires them the other way.
type RoomDirectory struct {
	mu          sync.Mutex
	sessions    *SessionRegistry
	rooms       map[domain.RoomID]*domain.Room
	memberships map[string]domain.RoomID
}

func NewRoomDirectory(sessions *SessionRegistry) *RoomDirectory {
	return &RoomDirectory{
		sessions:    sessions,
		rooms:       make(map[domain.RoomID]*domain.Room),
		memberships: make(map[string]domain.RoomID),
	}
}

// CreateRoom allocates the smallest unused positive id and puts nickname in it.
func (d *RoomDirectory) CreateRoom(nickname string) (domain.RoomID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.memberships[nickname]; ok {
		return 0, errors.ErrAlreadyInRoom
	}

	id := domain.RoomID(1)
	for {
		if _, used := d.rooms[id]; !used {
			break
		}
		id++
	}

	room := domain.NewRoom(id)
	room.Add(nickname)
	d.rooms[id] = room
	d.memberships[nickname] = id
	return id, nil
}

// JoinRoom adds nickname to an existing room and returns the members that
// were already there. The existence check and the insert share one critical
// section, so the room cannot vanish in between.
func (d *RoomDirectory) JoinRoom(nickname string, roomID domain.RoomID) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.memberships[nickname]; ok {
		return nil, errors.ErrAlreadyInRoom
	}
	room, ok := d.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}

	others := room.Members()
	room.Add(nickname)
	d.memberships[nickname] = roomID
	return others, nil
}

// LeaveRoom removes nickname from its room, deleting the room once empty.
// It returns the room id and the members left behind; ok is false when
// nickname was not in a room, in which case nothing changes.
func (d *RoomDirectory) LeaveRoom(nickname string) (roomID domain.RoomID, remaining []string, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	roomID, ok = d.memberships[nickname]
	if !ok {
		return 0, nil, false
	}
	delete(d.memberships, nickname)

	room, exists := d.rooms[roomID]
	if !exists {
		return roomID, nil, true
	}
	room.Remove(nickname)
	if room.IsEmpty() {
		delete(d.rooms, roomID)
		return roomID, nil, true
	}
	return roomID, room.Members(), true
}

// ListRooms returns the ids of existing rooms in ascending order.
func (d *RoomDirectory) ListRooms() []domain.RoomID {
	d.mu.Lock()
	ids := lo.Keys(d.rooms)
	d.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d *RoomDirectory) ListMembers(roomID domain.RoomID) ([]string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[roomID]
	if !ok {
		return nil, false
	}
	return room.Members(), true
}

func (d *RoomDirectory) CurrentRoom(nickname string) (domain.RoomID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	roomID, ok := d.memberships[nickname]
	return roomID, ok
}

// Recipients resolves the members of roomID to their sinks, skipping
// exclude and anyone whose session is already gone. It holds the directory
// lock while reading the registry so membership and sinks come from the
// same instant.
func (d *RoomDirectory) Recipients(roomID domain.RoomID, exclude string) []contract.Recipient {
	d.mu.Lock()
	defer d.mu.Unlock()

	room, ok := d.rooms[roomID]
	if !ok {
		return nil
	}
	members := lo.Filter(room.Members(), func(nickname string, _ int) bool {
		return nickname != exclude
	})
	return d.sessions.lookupAll(members)
}

// RoomCount is used by the heartbeat.
func (d *RoomDirectory) RoomCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.rooms)
}
