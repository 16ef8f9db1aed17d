package redisadapter

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MessageHandler receives every message arriving on any channel the
// broker is subscribed to.
type MessageHandler func(channel string, payload []byte)

// BrokerClient is the pub/sub transport between server nodes. One client
// is constructed per process and shared by every namespace adapter;
// adapters partition traffic by channel name.
//
// Required broker semantics: channel-exact delivery, at-most-once,
// ordered per publisher per channel, no persistence. Subscribing to a
// channel that is already subscribed must be harmless.
type BrokerClient interface {
	// Publish sends payload on channel. Fire-and-forget: the result is
	// not awaited and delivery failures are not reported.
	Publish(channel string, payload []byte)

	// Subscribe registers interest in channel. done, if non-nil, is
	// invoked with the outcome once the operation settles. Completions
	// of concurrently issued operations may arrive in any order.
	Subscribe(channel string, done func(error))

	// Unsubscribe drops interest in channel. Same completion contract
	// as Subscribe.
	Unsubscribe(channel string, done func(error))

	// OnMessage registers a handler for inbound messages. Every
	// handler sees every message; handlers filter by channel.
	OnMessage(handler MessageHandler)
}

// RedisBroker implements BrokerClient on Redis pub/sub. It holds two
// connections: one dedicated to publishing and one dedicated to
// subscriptions. The subscribing connection never publishes, so a node
// does not receive its own messages back from Redis.
type RedisBroker struct {
	pub    *redis.Client
	sub    *redis.Client
	pubsub *redis.PubSub

	mu       sync.RWMutex
	handlers []MessageHandler

	closeOnce sync.Once
}

// NewRedisBroker connects a broker to the Redis deployment described by
// opts, creating a publish client and a subscribe client.
func NewRedisBroker(opts *redis.Options) *RedisBroker {
	return NewRedisBrokerWithClients(redis.NewClient(opts), redis.NewClient(opts))
}

// NewRedisBrokerWithClients builds a broker from a pre-built pair of
// clients. pub handles PUBLISH, sub is taken over for subscriptions.
func NewRedisBrokerWithClients(pub, sub *redis.Client) *RedisBroker {
	b := &RedisBroker{
		pub:    pub,
		sub:    sub,
		pubsub: sub.Subscribe(context.Background()),
	}

	go b.dispatchLoop()

	return b
}

// Publish sends payload on channel without awaiting the result
func (b *RedisBroker) Publish(channel string, payload []byte) {
	go b.pub.Publish(context.Background(), channel, payload)
}

// Subscribe registers interest in channel
func (b *RedisBroker) Subscribe(channel string, done func(error)) {
	go func() {
		err := b.pubsub.Subscribe(context.Background(), channel)
		if done != nil {
			done(err)
		}
	}()
}

// Unsubscribe drops interest in channel
func (b *RedisBroker) Unsubscribe(channel string, done func(error)) {
	go func() {
		err := b.pubsub.Unsubscribe(context.Background(), channel)
		if done != nil {
			done(err)
		}
	}()
}

// OnMessage registers a handler for inbound messages
func (b *RedisBroker) OnMessage(handler MessageHandler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, handler)
	b.mu.Unlock()
}

// Close tears down the subscription stream and both connections
func (b *RedisBroker) Close() error {
	var err error
	b.closeOnce.Do(func() {
		err = b.pubsub.Close()
		if e := b.sub.Close(); err == nil {
			err = e
		}
		if e := b.pub.Close(); err == nil {
			err = e
		}
	})
	return err
}

func (b *RedisBroker) dispatchLoop() {
	for msg := range b.pubsub.Channel() {
		b.mu.RLock()
		handlers := make([]MessageHandler, len(b.handlers))
		copy(handlers, b.handlers)
		b.mu.RUnlock()

		for _, handler := range handlers {
			handler(msg.Channel, []byte(msg.Payload))
		}
	}
}
