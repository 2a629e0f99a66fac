package main

import (
	"log"

	_ "tareas/docs"
	"tareas/internal/config"
	"tareas/internal/server"
)

// @title           Tareas
// @version         1.0
// @description     Personal task tracker. Every operation is an HTML form post authenticated by the session cookie.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sessionid

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
