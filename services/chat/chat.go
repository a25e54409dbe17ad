package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Send appends the message, upserts the thread's inbox record, publishes the
// message to both participants' live channels, and queues a push for the
// receiver. Persistence failures abort; fan-out failures only log.
func (s *DefaultChatService) Send(ctx context.Context, senderUID string, req models.SendMessageRequest) (*models.Message, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if req.ReceiverUID == senderUID {
		return nil, fmt.Errorf("you cannot message yourself")
	}
	if _, err := s.Users.GetByID(req.ReceiverUID); err != nil {
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}

	convID := ConversationID(senderUID, req.ReceiverUID)
	msg := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: convID,
		SenderUID:      senderUID,
		ReceiverUID:    req.ReceiverUID,
		Content:        req.Content,
		Timestamp:      time.Now().UnixMilli(),
		Participants:   []string{senderUID, req.ReceiverUID},
	}

	if err := s.Repo.InsertMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	conv := &models.Conversation{
		ID:           convID,
		Participants: msg.Participants,
		LastMessage:  msg.Content,
		Timestamp:    msg.Timestamp,
	}
	if err := s.Repo.UpsertConversation(conv); err != nil {
		utils.GetLogger().Warn("Send: failed to upsert conversation",
			zap.String("conversationID", convID), zap.Error(err))
	}

	s.publish(ctx, msg)

	if s.Pusher != nil {
		sender, err := s.Users.GetByID(senderUID)
		title := "New message"
		if err == nil {
			title = sender.DisplayName()
		}
		err = s.Pusher.EnqueuePush(models.PushPayload{
			UserID: req.ReceiverUID,
			Title:  title,
			Body:   msg.Content,
			Data:   map[string]string{"conversationId": convID, "type": "chat_message"},
		})
		if err != nil {
			utils.GetLogger().Warn("Send: failed to enqueue push",
				zap.String("receiverUID", req.ReceiverUID), zap.Error(err))
		}
	}

	return msg, nil
}

// publish fans the message out to each participant's live channel.
func (s *DefaultChatService) publish(ctx context.Context, msg *models.Message) {
	if s.Redis == nil {
		return
	}
	b, err := json.Marshal(msg)
	if err != nil {
		utils.GetLogger().Warn("publish: failed to marshal message", zap.Error(err))
		return
	}
	for _, uid := range msg.Participants {
		channel := utils.ChatChannelPrefix + uid
		if err := s.Redis.Publish(ctx, channel, b).Err(); err != nil {
			utils.GetLogger().Warn("publish: failed to publish message",
				zap.String("channel", channel), zap.Error(err))
		}
	}
}

// History returns a thread's messages oldest first. Callers may only read
// threads they participate in; a thread with no messages yet reads as empty.
func (s *DefaultChatService) History(uid, conversationID string) ([]models.Message, error) {
	conv, err := s.Repo.GetConversation(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if conv == nil {
		return []models.Message{}, nil
	}
	if !contains(conv.Participants, uid) {
		return nil, fmt.Errorf("you are not a participant of this conversation")
	}
	msgs, err := s.Repo.GetByConversation(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return msgs, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Inbox lists the user's threads most recent first. Counterpart names are
// resolved in one batch read before responding, so the list renders complete
// on first paint instead of reshuffling as names trickle in.
func (s *DefaultChatService) Inbox(uid string) ([]models.InboxEntry, error) {
	convs, err := s.Repo.GetConversationsByParticipant(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	counterparts := make([]string, 0, len(convs))
	for _, conv := range convs {
		if other := counterpartOf(conv.Participants, uid); other != "" {
			counterparts = append(counterparts, other)
		}
	}

	names := map[string]string{}
	if len(counterparts) > 0 {
		users, err := s.Users.GetByIDs(counterparts)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve counterparts: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u.DisplayName()
		}
	}

	entries := make([]models.InboxEntry, 0, len(convs))
	for _, conv := range convs {
		other := counterpartOf(conv.Participants, uid)
		if other == "" {
			continue
		}
		entries = append(entries, models.InboxEntry{
			ConversationID:  conv.ID,
			CounterpartUID:  other,
			CounterpartName: names[other],
			LastMessage:     conv.LastMessage,
			Timestamp:       conv.Timestamp,
		})
	}
	return entries, nil
}

// DeriveInbox reconstructs the inbox from raw messages: one entry per thread,
// carrying the latest message as preview, ordered most recent first. msgs must
// already be ordered by descending timestamp.
func DeriveInbox(msgs []models.Message, uid string) []models.InboxEntry {
	seen := map[string]bool{}
	entries := make([]models.InboxEntry, 0)
	for _, m := range msgs {
		if seen[m.ConversationID] {
			continue
		}
		other := counterpartOf(m.Participants, uid)
		if other == "" {
			continue
		}
		seen[m.ConversationID] = true
		entries = append(entries, models.InboxEntry{
			ConversationID: m.ConversationID,
			CounterpartUID: other,
			LastMessage:    m.Content,
			Timestamp:      m.Timestamp,
		})
	}
	return entries
}

func counterpartOf(participants []string, uid string) string {
	for _, p := range participants {
		if p != uid {
			return p
		}
	}
	return ""
}
