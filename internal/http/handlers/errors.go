package handlers

import (
	"errors"
	"net/http"

	"convo-be/internal/store"

	"github.com/gin-gonic/gin"
)

// renderStoreError maps store errors onto the transport: NotFound → 404,
// duplicate email → 400. The store produces nothing else.
func renderStoreError(c *gin.Context, err error) {
	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"message": nf.Entity + " not found"})
		return
	}

	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "a user with this email already exists"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}
