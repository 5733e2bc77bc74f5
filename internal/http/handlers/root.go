package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the User/Conversation API."})
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
