package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/voice-herald/voice-herald/internal/bot"
)

type Config struct {
	Port   string
	Status func() bot.Status

	server *http.Server
}

func Start(sc *Config) error {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", handleHealth)
	router.HandleFunc("GET /status", sc.handleStatus)

	sc.server = &http.Server{
		Addr:              sc.Port,
		Handler:           http.TimeoutHandler(router, 5*time.Second, "Oops, timed out!"),
		ReadTimeout:       1 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Println("Status server starting on", sc.Port)

	err := sc.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start status server: %w", err)
	}

	return nil
}

func Stop(sc *Config) error {
	if sc.server == nil {
		return nil
	}

	fmt.Print("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := sc.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("could not shutdown server gracefully: %w", err)
	}

	fmt.Print("Done!\n")
	return nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (sc *Config) handleStatus(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sc.Status()); err != nil {
		log.Printf("could not write status response: %s", err)
	}

	log.Printf("%s '%s' in %s\n", r.Method, r.URL.Path, time.Since(startTime))
}
