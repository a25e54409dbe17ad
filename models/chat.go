package models

// Message is immutable once created. Timestamp is unix milliseconds, matching
// the ordering key used by clients.
type Message struct {
	ID             string   `bson:"id" json:"id"`
	ConversationID string   `bson:"conversationId" json:"conversationId"`
	SenderUID      string   `bson:"senderUid" json:"senderUid"`
	ReceiverUID    string   `bson:"receiverUid" json:"receiverUid"`
	Content        string   `bson:"content" json:"content"`
	Timestamp      int64    `bson:"timestamp" json:"timestamp"`
	Participants   []string `bson:"participants" json:"participants"`
}

// Conversation is the lightweight inbox metadata record, upserted on every
// send. The ID is derived from the sorted participant pair.
type Conversation struct {
	ID           string   `bson:"id" json:"id"`
	Participants []string `bson:"participants" json:"participants"`
	LastMessage  string   `bson:"lastMessage" json:"lastMessage"`
	Timestamp    int64    `bson:"timestamp" json:"timestamp"`
}

// InboxEntry is a conversation as listed on the messages screen, with the
// counterpart's display details resolved.
type InboxEntry struct {
	ConversationID  string `json:"conversationId"`
	CounterpartUID  string `json:"counterpartUid"`
	CounterpartName string `json:"counterpartName"`
	LastMessage     string `json:"lastMessage"`
	Timestamp       int64  `json:"timestamp"`
}

// SendMessageRequest is the send-message payload.
type SendMessageRequest struct {
	ReceiverUID string `json:"receiverUid" binding:"required"`
	Content     string `json:"content" binding:"required"`
}
