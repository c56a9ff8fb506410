package model

// Chat is one conversation owned by a user. The pair (userId, id) is the
// application-level key; a unique compound index on the chats collection
// enforces it. The database's own _id is never written by this service.
type Chat struct {
	UserID    string    `json:"userId" bson:"userId"`
	ID        string    `json:"id" bson:"id"`
	CreatedAt int64     `json:"createdAt" bson:"createdAt"`
	Messages  []Message `json:"messages" bson:"messages"`
}

// Message is an entry in a chat's message list. A message has no id of its
// own; it is addressed by its position in the list.
type Message struct {
	Role    string `json:"role,omitempty" bson:"role,omitempty"`
	Content string `json:"content" bson:"content"`
}
