package main

import (
	"fmt"
	"log"

	"convo-be/internal/config"
	"convo-be/internal/http/handlers"
	"convo-be/internal/http/middleware"
	"convo-be/internal/store"
	"convo-be/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// In-memory state: one store for the process lifetime, seeded with the
	// bootstrap user. Lost on restart.
	st := store.New()
	hub := ws.NewHub()

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/", handlers.Root)
	r.GET("/healthz", handlers.Healthz)

	userH := &handlers.UserHandler{Store: st, Hub: hub}
	r.POST("/users", userH.Create)
	r.GET("/users", userH.List)
	r.GET("/users/:id", userH.Get)
	r.PUT("/users/:id", userH.Update)
	r.DELETE("/users/:id", userH.Delete)

	convH := &handlers.ConversationHandler{Store: st, Hub: hub}
	r.POST("/users/:id/conversations", convH.CreateForUser)
	r.GET("/users/:id/conversations", convH.ListForUser)
	r.GET("/conversations", convH.List)
	r.PUT("/conversations/:id", convH.Update)
	r.DELETE("/conversations/:id", convH.Delete)

	eventsH := &handlers.EventsHandler{Hub: hub}
	r.GET("/events", eventsH.Handle)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Println("listening on", addr)
	log.Fatal(r.Run(addr))
}
