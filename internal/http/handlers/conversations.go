package handlers

import (
	"net/http"

	"convo-be/internal/store"
	"convo-be/internal/ws"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	Store *store.Store
	Hub   *ws.Hub
}

type conversationReq struct {
	Name     string `json:"name" binding:"required"`
	Messages string `json:"messages" binding:"required"`
}

// CreateForUser attaches a new conversation to the user in the path.
func (h *ConversationHandler) CreateForUser(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var req conversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	conv, err := h.Store.CreateConversation(userID, req.Name, req.Messages)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "conversation:created", Data: conv})
	c.JSON(http.StatusCreated, conv)
}

func (h *ConversationHandler) ListForUser(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}

	convs, err := h.Store.ListUserConversations(userID)
	if err != nil {
		renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

func (h *ConversationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListConversations())
}

func (h *ConversationHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req conversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	conv, err := h.Store.UpdateConversation(id, req.Name, req.Messages)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "conversation:updated", Data: conv})
	c.JSON(http.StatusOK, conv)
}

func (h *ConversationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteConversation(id); err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "conversation:deleted", Data: gin.H{"id": id}})
	c.Status(http.StatusNoContent)
}
