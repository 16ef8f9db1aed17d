package gosocketio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryAdapterMembership(t *testing.T) {
	ns := NewNamespace("/", nil)
	a := NewMemoryAdapter(ns)

	a.Add("s1", "lobby")
	a.Add("s2", "lobby")
	a.Add("s1", "games")

	assert.ElementsMatch(t, []string{"s1", "s2"}, a.Sockets("lobby"))
	assert.ElementsMatch(t, []string{"lobby", "games"}, a.SocketRooms("s1"))
	assert.ElementsMatch(t, []string{"lobby", "games"}, a.Rooms())

	a.Remove("s1", "lobby")
	assert.Equal(t, []string{"s2"}, a.Sockets("lobby"))

	// Removing the last occupant drops the room entirely.
	a.Remove("s1", "games")
	assert.Empty(t, a.Sockets("games"))
	assert.ElementsMatch(t, []string{"lobby"}, a.Rooms())
}

func TestMemoryAdapterRemoveAll(t *testing.T) {
	ns := NewNamespace("/", nil)
	a := NewMemoryAdapter(ns)

	a.Add("s1", "a")
	a.Add("s1", "b")
	a.Add("s2", "b")

	a.RemoveAll("s1")

	assert.Empty(t, a.SocketRooms("s1"))
	assert.Empty(t, a.Sockets("a"))
	assert.Equal(t, []string{"s2"}, a.Sockets("b"))
}

func TestMemoryAdapterBroadcastWithoutSockets(t *testing.T) {
	ns := NewNamespace("/", nil)
	a := NewMemoryAdapter(ns)

	packet := &Packet{Type: PacketTypeEvent, Namespace: "/", Data: []interface{}{"news"}}

	assert.NoError(t, a.Broadcast(packet, nil))
	assert.NoError(t, a.Broadcast(packet, &BroadcastOptions{Rooms: []string{"empty"}}))
}
