package web

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"mediarec/web/backend"
)

// HandleAPI registers the backend endpoints on mux.
func HandleAPI(mux *http.ServeMux, api *backend.API) {
	mux.HandleFunc("/api/search", api.HandleSearch)
	mux.HandleFunc("/api/suggest", api.HandleSuggest)
	mux.HandleFunc("/api/session", api.HandleSession)
	mux.HandleFunc("/api/session/family", api.HandleFamilyMode)
}

// RunServer serves mux on addr until interrupted, then shuts down
// gracefully.
func RunServer(mux *http.ServeMux, addr string) {
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
