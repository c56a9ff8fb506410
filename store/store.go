package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrNotFound means no chat matched the (userId, id) pair.
	ErrNotFound = errors.New("chat not found")
	// ErrIndexOutOfRange means the message index is outside the chat's
	// message list.
	ErrIndexOutOfRange = errors.New("message index out of range")
	// ErrNotUpdated means the write matched a chat but modified nothing.
	ErrNotUpdated = errors.New("chat not updated")
)

// SaveResult reports the outcome of an upsert.
type SaveResult struct {
	UpsertedID    any   `json:"upsertedId"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ChatStore is the persistence surface for chat documents. Implementations
// must treat (userId, id) as the unique key for a chat.
type ChatStore interface {
	// ListChats returns all of a user's chats, newest first by createdAt.
	ListChats(ctx context.Context, userID string) ([]bson.M, error)

	// SaveChat upserts the document keyed by its userId and id fields,
	// setting exactly the fields present in doc. The caller guarantees
	// userId and id are non-empty strings; doc itself is never modified.
	SaveChat(ctx context.Context, doc bson.M) (*SaveResult, error)

	// DeleteChat removes the chat matching (userID, chatID). Returns
	// ErrNotFound if nothing matched.
	DeleteChat(ctx context.Context, userID, chatID string) error

	// EditMessage replaces the content of the message at index in the
	// chat matching (userID, chatID). Returns ErrNotFound if the chat is
	// absent, ErrIndexOutOfRange if index is outside [0, len(messages)),
	// and ErrNotUpdated if the write modified nothing.
	EditMessage(ctx context.Context, userID, chatID string, index int, content string) error
}
