package main

import (
	"fmt"
	"log"
	"net/http"

	"eventro-backend/internal/config"
	"eventro-backend/internal/server"
)

func main() {
	cfg := config.Load()
	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	addr := ":" + cfg.Port
	fmt.Printf("Eventro server listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, s.Router()))
}
