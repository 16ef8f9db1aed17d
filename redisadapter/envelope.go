package redisadapter

import (
	"encoding/json"
	"errors"
	"fmt"

	gosocketio "github.com/ramory-l/gosocketio-cluster"
)

// ErrMalformedEnvelope is returned when a broker payload cannot be
// decoded into an [origin, packet, options] triple.
var ErrMalformedEnvelope = errors.New("malformed envelope")

// envelope is the unit exchanged between server nodes: the identity of
// the publishing node, the packet to deliver, and its broadcast options.
// On the wire it is the JSON array [origin, packet, options].
type envelope struct {
	Origin string
	Packet *gosocketio.Packet
	Opts   *gosocketio.BroadcastOptions
}

func encodeEnvelope(env *envelope) ([]byte, error) {
	return json.Marshal([3]interface{}{env.Origin, env.Packet, env.Opts})
}

func decodeEnvelope(payload []byte) (*envelope, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(payload, &parts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 3 elements, got %d", ErrMalformedEnvelope, len(parts))
	}

	env := &envelope{}
	if err := json.Unmarshal(parts[0], &env.Origin); err != nil {
		return nil, fmt.Errorf("%w: origin: %v", ErrMalformedEnvelope, err)
	}
	if err := json.Unmarshal(parts[1], &env.Packet); err != nil {
		return nil, fmt.Errorf("%w: packet: %v", ErrMalformedEnvelope, err)
	}
	if env.Packet == nil {
		return nil, fmt.Errorf("%w: null packet", ErrMalformedEnvelope)
	}
	if err := json.Unmarshal(parts[2], &env.Opts); err != nil {
		return nil, fmt.Errorf("%w: options: %v", ErrMalformedEnvelope, err)
	}

	// A packet published without a namespace belongs to the root
	// namespace. The default must be in place before any namespace
	// comparison happens downstream.
	if env.Packet.Namespace == "" {
		env.Packet.Namespace = "/"
	}
	if env.Opts == nil {
		env.Opts = &gosocketio.BroadcastOptions{}
	}

	return env, nil
}
