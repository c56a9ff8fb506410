package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sarwanazhar/chatstore/model"
)

const chatCollection = "chats"

// Mongo implements ChatStore on a single MongoDB collection.
type Mongo struct {
	chats *mongo.Collection
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	return &Mongo{chats: client.Database(dbName).Collection(chatCollection)}
}

// EnsureIndexes creates the unique compound index on (userId, id) that
// backs the chat key invariant. Safe to call on every startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.chats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create chats index: %w", err)
	}
	return nil
}

func (m *Mongo) ListChats(ctx context.Context, userID string) ([]bson.M, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(listSort())

	cursor, err := m.chats.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find chats: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []bson.M
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, fmt.Errorf("decode chats: %w", err)
	}
	return chats, nil
}

func (m *Mongo) SaveChat(ctx context.Context, doc bson.M) (*SaveResult, error) {
	filter, update := saveCommand(doc)
	res, err := m.chats.UpdateOne(ctx, filter, update, saveOptions())
	if err != nil {
		return nil, fmt.Errorf("upsert chat: %w", err)
	}

	return &SaveResult{
		UpsertedID:    res.UpsertedID,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (m *Mongo) DeleteChat(ctx context.Context, userID, chatID string) error {
	res, err := m.chats.DeleteOne(ctx, chatFilter(userID, chatID))
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) EditMessage(ctx context.Context, userID, chatID string, index int, content string) error {
	filter := chatFilter(userID, chatID)

	// Read first to bound-check the index against the current list.
	var chat model.Chat
	err := m.chats.FindOne(ctx, filter,
		options.FindOne().SetProjection(bson.M{"messages": 1})).Decode(&chat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find chat: %w", err)
	}
	if !validMessageIndex(index, len(chat.Messages)) {
		return ErrIndexOutOfRange
	}

	// Positional update touches only this message's content, so other
	// messages and any extra fields on this one survive untouched.
	update := bson.M{"$set": bson.M{messageContentField(index): content}}
	res, err := m.chats.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if res.ModifiedCount != 1 {
		return ErrNotUpdated
	}
	return nil
}

func chatFilter(userID, chatID any) bson.M {
	return bson.M{"userId": userID, "id": chatID}
}

// listSort orders chats newest first by createdAt.
func listSort() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

// saveCommand builds the upsert filter and update for a chat payload. The
// payload is copied so the caller's map is never mutated; the store assigns
// its own _id, so one arriving in the payload is dropped from the copy.
func saveCommand(doc bson.M) (filter, update bson.M) {
	fields := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		fields[k] = v
	}
	return chatFilter(doc["userId"], doc["id"]), bson.M{"$set": fields}
}

func saveOptions() *options.UpdateOneOptionsBuilder {
	return options.UpdateOne().SetUpsert(true)
}

func validMessageIndex(index, count int) bool {
	return index >= 0 && index < count
}

func messageContentField(index int) string {
	return fmt.Sprintf("messages.%d.content", index)
}
