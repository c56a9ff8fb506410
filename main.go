package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarwanazhar/chatstore/config"
	"github.com/sarwanazhar/chatstore/controlers"
	"github.com/sarwanazhar/chatstore/database"
	"github.com/sarwanazhar/chatstore/routes"
	"github.com/sarwanazhar/chatstore/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(connectCtx, cfg.MongoURI)
	connectCancel()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	log.Println("MongoDB connected")

	chats := store.NewMongo(client, cfg.DBName)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = chats.EnsureIndexes(indexCtx)
	indexCancel()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := gin.Default()
	routes.InitRoutes(r, controlers.NewChatHandler(chats), cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to run: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
