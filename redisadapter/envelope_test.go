package redisadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gosocketio "github.com/ramory-l/gosocketio-cluster"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	in := &envelope{
		Origin: "node-1",
		Packet: &gosocketio.Packet{
			Type:      gosocketio.PacketTypeEvent,
			Namespace: "/chat",
			Data:      []interface{}{"news", "hi"},
		},
		Opts: &gosocketio.BroadcastOptions{Rooms: []string{"lobby"}, Except: []string{"s9"}},
	}

	payload, err := encodeEnvelope(in)
	require.NoError(t, err)

	out, err := decodeEnvelope(payload)
	require.NoError(t, err)

	assert.Equal(t, "node-1", out.Origin)
	assert.Equal(t, gosocketio.PacketTypeEvent, out.Packet.Type)
	assert.Equal(t, "/chat", out.Packet.Namespace)
	assert.Equal(t, []interface{}{"news", "hi"}, out.Packet.Data)
	assert.Equal(t, []string{"lobby"}, out.Opts.Rooms)
	assert.Equal(t, []string{"s9"}, out.Opts.Except)
}

func TestDecodeDefaultsMissingNamespaceToRoot(t *testing.T) {
	payload := []byte(`["node-1",{"type":2,"data":["news"]},{}]`)

	env, err := decodeEnvelope(payload)
	require.NoError(t, err)
	assert.Equal(t, "/", env.Packet.Namespace)
}

func TestDecodeToleratesNullOptions(t *testing.T) {
	payload := []byte(`["node-1",{"type":2,"nsp":"/chat"},null]`)

	env, err := decodeEnvelope(payload)
	require.NoError(t, err)
	require.NotNil(t, env.Opts)
	assert.Empty(t, env.Opts.Rooms)
}

func TestDecodeMalformed(t *testing.T) {
	for name, payload := range map[string]string{
		"not json":      `{{{`,
		"not an array":  `{"origin":"x"}`,
		"two elements":  `["node-1",{"type":2}]`,
		"four elements": `["node-1",{"type":2},{},{}]`,
		"origin type":   `[42,{"type":2},{}]`,
		"null packet":   `["node-1",null,{}]`,
		"packet type":   `["node-1","nope",{}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeEnvelope([]byte(payload))
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}
