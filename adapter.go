package gosocketio

// BroadcastOptions describes the targets of a broadcast. A nil or empty
// Rooms list means every socket in the namespace. The struct is JSON
// encodable so an adapter can forward it to other server nodes as-is.
type BroadcastOptions struct {
	// Rooms restricts delivery to sockets in at least one of these rooms.
	Rooms []string `json:"rooms,omitempty"`

	// Except lists socket IDs excluded from delivery.
	Except []string `json:"except,omitempty"`
}

// Adapter manages room membership and broadcasting for a namespace.
//
// The default implementation is MemoryAdapter, which only reaches sockets
// connected to this process. The redisadapter package provides an
// implementation that spans every server node sharing a Redis deployment.
type Adapter interface {
	// Add adds a socket to a room
	Add(socketID, room string)

	// Remove removes a socket from a room
	Remove(socketID, room string)

	// RemoveAll removes a socket from all rooms
	RemoveAll(socketID string)

	// Sockets returns all socket IDs in a room
	Sockets(room string) []string

	// Rooms returns all rooms that currently have at least one socket
	Rooms() []string

	// SocketRooms returns all rooms a socket is in
	SocketRooms(socketID string) []string

	// Broadcast sends a packet to the sockets selected by opts.
	// A nil opts broadcasts to the whole namespace.
	Broadcast(packet *Packet, opts *BroadcastOptions) error

	// Close cleans up the adapter
	Close() error
}
