package redisadapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "socket.io#/chat#", namespaceChannel("socket.io", "/chat"))
	assert.Equal(t, "socket.io#/chat#lobby#", roomChannel("socket.io", "/chat", "lobby"))
	assert.Equal(t, "events#/#", namespaceChannel("events", "/"))
}

func TestRoomChannelExtendsNamespaceChannel(t *testing.T) {
	// The inbound relevance check relies on every room channel being a
	// textual extension of its namespace channel, and on channels of
	// sibling namespaces not extending each other.
	nsCh := namespaceChannel("socket.io", "/chat")

	assert.True(t, strings.HasPrefix(roomChannel("socket.io", "/chat", "lobby"), nsCh))
	assert.False(t, strings.HasPrefix(namespaceChannel("socket.io", "/chat2"), nsCh))
	assert.False(t, strings.HasPrefix(roomChannel("socket.io", "/chat2", "lobby"), nsCh))
	assert.False(t, strings.HasPrefix(namespaceChannel("socket.io", "/chat"), namespaceChannel("socket.io", "/")))
}

func TestDistinctTargetsDistinctChannels(t *testing.T) {
	seen := map[string]string{}
	for _, tc := range []struct{ nsp, room string }{
		{"/chat", "a"},
		{"/chat", "b"},
		{"/video", "a"},
		{"/", "a"},
	} {
		ch := roomChannel("socket.io", tc.nsp, tc.room)
		prev, dup := seen[ch]
		assert.False(t, dup, "channel %q already produced by %s", ch, prev)
		seen[ch] = tc.nsp + "/" + tc.room
	}
}
