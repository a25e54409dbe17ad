package chatRepo

import (
	"context"
	"fmt"
	"time"

	"grindsphere/database"
	"grindsphere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	messages      *mongo.Collection
	conversations *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{
		messages:      database.Collection("messages"),
		conversations: database.Collection("conversations"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "participants", Value: 1}}},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	convIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	if _, err := r.conversations.Indexes().CreateMany(ctx, convIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	return nil
}

// InsertMessage appends an immutable message document.
func (r *MongoChatRepo) InsertMessage(msg *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MongoChatRepo) findMessages(filter bson.M, sort bson.D) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// GetByConversation retrieves a conversation's messages, oldest first.
func (r *MongoChatRepo) GetByConversation(conversationID string) ([]models.Message, error) {
	return r.findMessages(
		bson.M{"conversationId": conversationID},
		bson.D{{Key: "timestamp", Value: 1}},
	)
}

// GetByParticipant retrieves every message the user participates in, newest first.
func (r *MongoChatRepo) GetByParticipant(uid string) ([]models.Message, error) {
	return r.findMessages(
		bson.M{"participants": uid},
		bson.D{{Key: "timestamp", Value: -1}},
	)
}

// UpsertConversation writes the inbox metadata record for a thread.
func (r *MongoChatRepo) UpsertConversation(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": conv.ID}
	update := bson.M{
		"$set": bson.M{
			"lastMessage": conv.LastMessage,
			"timestamp":   conv.Timestamp,
		},
		"$setOnInsert": bson.M{
			"id":           conv.ID,
			"participants": conv.Participants,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.conversations.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert conversation %s: %w", conv.ID, err)
	}
	return nil
}

// GetConversation retrieves a conversation metadata record.
func (r *MongoChatRepo) GetConversation(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", id, err)
	}
	return &conv, nil
}

// GetConversationsByParticipant lists the user's conversations, most recent first.
func (r *MongoChatRepo) GetConversationsByParticipant(uid string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.conversations.Find(ctx, bson.M{"participants": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var convs []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, nil
}
