package redisadapter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	gosocketio "github.com/ramory-l/gosocketio-cluster"
)

// DefaultPrefix is the leading section of broker channel names when no
// prefix is configured.
const DefaultPrefix = "socket.io"

// Options configures a distributed adapter. The zero value (or nil) is
// usable.
type Options struct {
	// Prefix is the leading section of every broker channel name,
	// default "socket.io". Adapters see each other's traffic only when
	// their prefixes match.
	Prefix string

	// Logger receives diagnostics such as dropped inbound messages.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// Local overrides the local membership tracker, which defaults to
	// a MemoryAdapter for the namespace. Mostly useful in tests.
	Local gosocketio.Adapter
}

// Adapter replicates broadcasts across every server node connected to
// the same broker. Membership stays local: each node tracks its own
// sockets and subscribes to the broker channels of exactly the rooms
// that have at least one local occupant, plus one namespace-wide channel
// held for the adapter's entire lifetime.
//
// Subscribe and unsubscribe operations complete asynchronously and are
// not serialized per room: a rapid join/leave/join on one room may
// settle out of issue order, leaving the broker's view briefly behind
// the local one until the in-flight operations finish.
type Adapter struct {
	uid     string
	nsp     *gosocketio.Namespace
	local   gosocketio.Adapter
	broker  BrokerClient
	prefix  string
	channel string // namespace-wide channel, also the inbound relevance prefix
	logger  *zap.Logger

	mu      sync.RWMutex
	onError []func(error)
}

var _ gosocketio.Adapter = (*Adapter)(nil)

// New builds a distributed adapter for ns on top of broker and
// subscribes the namespace-wide channel. The broker client is shared
// process-wide state; construct one and pass it to every adapter.
func New(ns *gosocketio.Namespace, broker BrokerClient, opts *Options) *Adapter {
	if opts == nil {
		opts = &Options{}
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	local := opts.Local
	if local == nil {
		local = gosocketio.NewMemoryAdapter(ns)
	}

	a := &Adapter{
		uid:     uuid.NewString(),
		nsp:     ns,
		local:   local,
		broker:  broker,
		prefix:  prefix,
		channel: namespaceChannel(prefix, ns.Name()),
		logger:  logger,
	}

	broker.OnMessage(a.onMessage)
	a.subscribe(a.channel, nil)

	return a
}

// UID returns this node's identity, the origin tag carried by every
// envelope it publishes.
func (a *Adapter) UID() string {
	return a.uid
}

// OnError registers a handler for broker subscribe/unsubscribe failures
// and malformed inbound envelopes. Handlers run on broker goroutines.
func (a *Adapter) OnError(handler func(error)) {
	a.mu.Lock()
	a.onError = append(a.onError, handler)
	a.mu.Unlock()
}

// Add adds a socket to a room and subscribes the room's channel
func (a *Adapter) Add(socketID, room string) {
	a.AddWithDone(socketID, room, nil)
}

// AddWithDone is Add with a completion callback for the broker
// subscribe. The subscribe is issued on every call, even when the room
// channel is already subscribed; Redis treats that as a no-op on the
// subscribing connection.
func (a *Adapter) AddWithDone(socketID, room string, done func(error)) {
	a.local.Add(socketID, room)
	a.subscribe(roomChannel(a.prefix, a.nsp.Name(), room), done)
}

// Remove removes a socket from a room, unsubscribing the room's channel
// when no local socket remains in it
func (a *Adapter) Remove(socketID, room string) {
	a.RemoveWithDone(socketID, room, nil)
}

// RemoveWithDone is Remove with a completion callback. When the removal
// needs no unsubscribe, either because the room still has local
// occupants or because it had no local members to begin with, done is
// invoked immediately with nil.
func (a *Adapter) RemoveWithDone(socketID, room string, done func(error)) {
	hadRoom := len(a.local.Sockets(room)) > 0

	a.local.Remove(socketID, room)

	if hadRoom && len(a.local.Sockets(room)) == 0 {
		a.unsubscribe(roomChannel(a.prefix, a.nsp.Name(), room), done)
		return
	}

	if done != nil {
		done(nil)
	}
}

// RemoveAll removes a socket from every room it occupies
func (a *Adapter) RemoveAll(socketID string) {
	a.RemoveAllWithDone(socketID, nil)
}

// RemoveAllWithDone removes the socket from each of its rooms
// concurrently, with no cap on in-flight broker operations. done is
// invoked once per room processed, not once overall; callers passing a
// callback must tolerate multiple invocations.
func (a *Adapter) RemoveAllWithDone(socketID string, done func(error)) {
	for _, room := range a.local.SocketRooms(socketID) {
		go a.RemoveWithDone(socketID, room, done)
	}
}

// Sockets returns all socket IDs in a room on this node
func (a *Adapter) Sockets(room string) []string {
	return a.local.Sockets(room)
}

// Rooms returns all rooms with at least one socket on this node
func (a *Adapter) Rooms() []string {
	return a.local.Rooms()
}

// SocketRooms returns all rooms a socket is in
func (a *Adapter) SocketRooms(socketID string) []string {
	return a.local.SocketRooms(socketID)
}

// Broadcast delivers the packet to local sockets and publishes it for
// the other nodes: once per target room, or once on the namespace-wide
// channel when opts names no rooms. Publishes are fire-and-forget; a
// lost publish is not surfaced as an error.
func (a *Adapter) Broadcast(packet *gosocketio.Packet, opts *gosocketio.BroadcastOptions) error {
	return a.broadcast(packet, opts, false)
}

// Close unsubscribes every channel this adapter holds and closes the
// local tracker. The broker client stays open; it belongs to the
// process, not to any one namespace.
func (a *Adapter) Close() error {
	for _, room := range a.local.Rooms() {
		a.broker.Unsubscribe(roomChannel(a.prefix, a.nsp.Name(), room), nil)
	}
	a.broker.Unsubscribe(a.channel, nil)

	return a.local.Close()
}

func (a *Adapter) broadcast(packet *gosocketio.Packet, opts *gosocketio.BroadcastOptions, remote bool) error {
	if opts == nil {
		opts = &gosocketio.BroadcastOptions{}
	}

	// Local delivery happens first, whatever the packet's origin.
	if err := a.local.Broadcast(packet, opts); err != nil {
		return err
	}

	// A packet that arrived from another node must never be published
	// again, or it would bounce between nodes forever.
	if remote {
		return nil
	}

	payload, err := encodeEnvelope(&envelope{Origin: a.uid, Packet: packet, Opts: opts})
	if err != nil {
		return err
	}

	if len(opts.Rooms) > 0 {
		for _, room := range opts.Rooms {
			a.broker.Publish(roomChannel(a.prefix, a.nsp.Name(), room), payload)
		}
	} else {
		a.broker.Publish(a.channel, payload)
	}

	return nil
}

// onMessage routes one broker-delivered message. Only messages on this
// namespace's channel, or on a room channel under it, are considered;
// the decoded packet's namespace must match too, since the relevance
// check alone cannot tell apart namespaces on exotic channel layouts.
func (a *Adapter) onMessage(channel string, payload []byte) {
	if !strings.HasPrefix(channel, a.channel) {
		a.logger.Debug("ignoring message on foreign channel",
			zap.String("channel", channel))
		return
	}

	env, err := decodeEnvelope(payload)
	if err != nil {
		a.emitError(err)
		return
	}

	if env.Packet.Namespace != a.nsp.Name() {
		a.logger.Debug("ignoring message for other namespace",
			zap.String("nsp", env.Packet.Namespace))
		return
	}

	// No origin comparison here: the remote flag alone stops
	// re-publishing. A broker that echoed a node's own publishes back
	// would make that node deliver them locally twice.
	if err := a.broadcast(env.Packet, env.Opts, true); err != nil {
		a.emitError(err)
	}
}

func (a *Adapter) subscribe(channel string, done func(error)) {
	a.broker.Subscribe(channel, func(err error) {
		if err != nil {
			err = fmt.Errorf("subscribe %s: %w", channel, err)
			a.emitError(err)
		}
		if done != nil {
			done(err)
		}
	})
}

func (a *Adapter) unsubscribe(channel string, done func(error)) {
	a.broker.Unsubscribe(channel, func(err error) {
		if err != nil {
			err = fmt.Errorf("unsubscribe %s: %w", channel, err)
			a.emitError(err)
		}
		if done != nil {
			done(err)
		}
	})
}

func (a *Adapter) emitError(err error) {
	a.mu.RLock()
	handlers := make([]func(error), len(a.onError))
	copy(handlers, a.onError)
	a.mu.RUnlock()

	if len(handlers) == 0 {
		a.logger.Warn("adapter error", zap.Error(err))
		return
	}

	for _, handler := range handlers {
		handler(err)
	}
}
