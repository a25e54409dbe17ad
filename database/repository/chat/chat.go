package chatRepo

import "grindsphere/models"

// ChatRepository defines methods for message and conversation access.
type ChatRepository interface {
	// InsertMessage appends an immutable message document.
	InsertMessage(msg *models.Message) error
	// GetByConversation retrieves a conversation's messages ordered by
	// ascending timestamp.
	GetByConversation(conversationID string) ([]models.Message, error)
	// GetByParticipant retrieves every message the given user is a
	// participant of, ordered by descending timestamp.
	GetByParticipant(uid string) ([]models.Message, error)

	// UpsertConversation writes the inbox metadata record for a thread.
	UpsertConversation(conv *models.Conversation) error
	// GetConversation retrieves a conversation metadata record.
	GetConversation(id string) (*models.Conversation, error)
	// GetConversationsByParticipant lists the user's conversations ordered
	// by descending last-message timestamp.
	GetConversationsByParticipant(uid string) ([]models.Conversation, error)
}
