// Package main runs the joke workflow HTTP server.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	genopenai "github.com/ANURAGMN/Autosuggestion-different-architectures/internal/adapters/generator/openai"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/adapters/repository/memory"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/app/usecases"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	gen := genopenai.NewClient(genopenai.Config{
		APIKey:         apiKey,
		Model:          os.Getenv("OPENAI_MODEL"),
		RequestTimeout: envDuration("OPENAI_TIMEOUT", 30*time.Second),
	})

	saver := memory.DefaultSaver()
	engine, err := usecases.NewEngine(gen, saver)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}

	srv := newServer(engine)
	mux := http.NewServeMux()
	srv.register(mux)

	addr := ":8000"
	if v := os.Getenv("JOKEFLOW_ADDR"); v != "" {
		addr = v
	}
	log.Printf("Starting jokeflow server on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
