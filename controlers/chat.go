package controlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sarwanazhar/chatstore/store"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// ChatHandler serves the chat CRUD endpoints against a ChatStore.
type ChatHandler struct {
	Store store.ChatStore
}

func NewChatHandler(s store.ChatStore) *ChatHandler {
	return &ChatHandler{Store: s}
}

// GetChats returns every chat owned by the path user, newest first.
func (h *ChatHandler) GetChats(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	chats, err := h.Store.ListChats(ctx, userID)
	if err != nil {
		log.Printf("failed to list chats for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chats"})
		return
	}

	if chats == nil {
		chats = []bson.M{}
	}
	c.JSON(http.StatusOK, chats)
}

// SaveChat upserts the chat document in the request body, keyed by its
// userId and id fields. Fields present in the body are set; fields absent
// from it are left alone on an existing document.
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, ok := doc["userId"].(string)
	if !ok || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	chatID, ok := doc["id"].(string)
	if !ok || chatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	// With auth enabled the middleware stores the token's user; the save
	// route has no :userId path parameter, so the payload is checked here.
	if authUser := c.GetString("userId"); authUser != "" && authUser != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Token does not match user"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	res, err := h.Store.SaveChat(ctx, doc)
	if err != nil {
		log.Printf("failed to save chat %s for user %s: %v", chatID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Chat saved successfully",
		"upsertedId":    res.UpsertedID,
		"modifiedCount": res.ModifiedCount,
	})
}

// DeleteChat removes the chat matching the path's (userId, chatId).
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	userID := c.Param("userId")
	chatID := c.Param("chatId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	err := h.Store.DeleteChat(ctx, userID, chatID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
	case err != nil:
		log.Printf("failed to delete chat %s for user %s: %v", chatID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete chat"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Chat deleted successfully"})
	}
}

// EditMessage replaces the content of one message, addressed by its
// position in the chat's message list.
func (h *ChatHandler) EditMessage(c *gin.Context) {
	userID := c.Param("userId")
	chatID := c.Param("chatId")

	index, err := strconv.Atoi(c.Param("messageIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message index"})
		return
	}

	type Body struct {
		Content string `json:"content"`
	}
	var body Body
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	err = h.Store.EditMessage(ctx, userID, chatID, index, body.Content)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
	case errors.Is(err, store.ErrIndexOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message index"})
	case errors.Is(err, store.ErrNotUpdated):
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not updated"})
	case err != nil:
		log.Printf("failed to edit message %d in chat %s for user %s: %v", index, chatID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Message updated successfully"})
	}
}
