package chat

import (
	"testing"

	"grindsphere/models"

	"github.com/stretchr/testify/assert"
)

func TestConversationIDIsSymmetric(t *testing.T) {
	assert.Equal(t, ConversationID("alice", "bob"), ConversationID("bob", "alice"))
	assert.Equal(t, "alice_bob", ConversationID("bob", "alice"))
}

func TestDeriveInboxGroupsByConversation(t *testing.T) {
	// Descending timestamp, two threads.
	msgs := []models.Message{
		{ConversationID: "a_b", SenderUID: "b", Content: "latest from b", Timestamp: 300, Participants: []string{"a", "b"}},
		{ConversationID: "a_c", SenderUID: "a", Content: "hi c", Timestamp: 200, Participants: []string{"a", "c"}},
		{ConversationID: "a_b", SenderUID: "a", Content: "older", Timestamp: 100, Participants: []string{"a", "b"}},
	}

	entries := DeriveInbox(msgs, "a")
	assert.Len(t, entries, 2)

	assert.Equal(t, "a_b", entries[0].ConversationID)
	assert.Equal(t, "b", entries[0].CounterpartUID)
	assert.Equal(t, "latest from b", entries[0].LastMessage)
	assert.EqualValues(t, 300, entries[0].Timestamp)

	assert.Equal(t, "a_c", entries[1].ConversationID)
	assert.Equal(t, "c", entries[1].CounterpartUID)
}

func TestDeriveInboxPreviewIsLatestRegardlessOfSender(t *testing.T) {
	msgs := []models.Message{
		{ConversationID: "a_b", SenderUID: "a", Content: "my own last word", Timestamp: 500, Participants: []string{"a", "b"}},
		{ConversationID: "a_b", SenderUID: "b", Content: "their reply", Timestamp: 400, Participants: []string{"a", "b"}},
	}

	entries := DeriveInbox(msgs, "a")
	assert.Len(t, entries, 1)
	assert.Equal(t, "my own last word", entries[0].LastMessage)
}

func TestDeriveInboxEmpty(t *testing.T) {
	entries := DeriveInbox(nil, "a")
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
