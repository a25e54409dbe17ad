package chat

import (
	"context"
	"sort"
	"strings"

	chatRepo "grindsphere/database/repository/chat"
	userRepo "grindsphere/database/repository/user"
	"grindsphere/models"
	"grindsphere/services/tasks"

	"github.com/go-redis/redis/v8"
)

// ChatService manages direct messages between two users.
type ChatService interface {
	// Send appends a message, updates the thread metadata, fans it out to
	// live subscribers, and queues a push for the receiver.
	Send(ctx context.Context, senderUID string, req models.SendMessageRequest) (*models.Message, error)
	// History returns a thread's messages oldest first. The caller must be a
	// participant.
	History(uid, conversationID string) ([]models.Message, error)
	// Inbox lists the user's threads, most recent first, with counterpart
	// names resolved.
	Inbox(uid string) ([]models.InboxEntry, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo   chatRepo.ChatRepository
	Users  userRepo.UserRepository
	Redis  *redis.Client
	Pusher tasks.PushEnqueuer
}

// ConversationID derives the thread ID for a pair of users. Both directions
// map to the same ID, so two people always share one thread.
func ConversationID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}
