// Package redisadapter connects multiple gosocketio server nodes into a
// single broadcast domain over Redis pub/sub.
//
// Each namespace gets an Adapter that keeps room membership local and
// mirrors it into broker subscriptions: one channel per locally occupied
// room, plus one namespace-wide channel. Outbound broadcasts are
// delivered locally, wrapped in an [origin, packet, options] envelope
// and published; inbound envelopes from other nodes are delivered
// locally only, so a message crosses the broker at most once.
//
// Usage:
//
//	broker := redisadapter.NewRedisBroker(&redis.Options{Addr: "localhost:6379"})
//
//	server := gosocketio.NewServer(&gosocketio.Config{
//	    Adapter: func(ns *gosocketio.Namespace) gosocketio.Adapter {
//	        return redisadapter.New(ns, broker, nil)
//	    },
//	})
//
// Delivery guarantees match Redis pub/sub: at-most-once, unordered
// across channels, no persistence. A publish lost in transit is not
// retried or reported.
package redisadapter
