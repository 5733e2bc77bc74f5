package handlers

import (
	"net/http"
	"strconv"

	"convo-be/internal/store"
	"convo-be/internal/ws"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Store *store.Store
	Hub   *ws.Hub
}

// userReq covers both create and update: the same three fields are
// required for each. The password is validated and then discarded; it is
// never stored or echoed.
type userReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	u, err := h.Store.CreateUser(req.Username, req.Email)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "user:created", Data: u})
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListUsers())
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.Store.GetUser(id)
	if err != nil {
		renderStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	u, err := h.Store.UpdateUser(id, req.Username, req.Email)
	if err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "user:updated", Data: u})
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteUser(id); err != nil {
		renderStoreError(c, err)
		return
	}

	h.Hub.Broadcast(ws.Event{Type: "user:deleted", Data: gin.H{"id": id}})
	c.Status(http.StatusNoContent)
}

// pathID parses the :id segment. A non-integer id can never name an
// existing record, so it reads as not found.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return 0, false
	}
	return id, true
}
