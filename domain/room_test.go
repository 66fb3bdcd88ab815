package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_Add_Remove(t *testing.T) {
	req := require.New(t)
	room := NewRoom(1)

	// Given an empty room
	req.True(room.IsEmpty())

	// When two members join, one of them twice
	room.Add("bob")
	room.Add("alice")
	room.Add("bob")

	// Then members are unique and sorted
	req.Equal(2, room.Len())
	req.Equal([]string{"alice", "bob"}, room.Members())
	req.True(room.Has("alice"))

	// When both leave
	room.Remove("alice")
	room.Remove("bob")
	room.Remove("bob")

	// Then the room is empty
	req.True(room.IsEmpty())
	req.False(room.Has("alice"))
	req.Empty(room.Members())
}

func TestRoom_Members_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	room := NewRoom(3)
	room.Add("carol")

	members := room.Members()
	members[0] = "mallory"

	req.Equal([]string{"carol"}, room.Members())
}
