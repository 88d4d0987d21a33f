package main

import (
	"flag"
	"log"
	"net/http"

	"mediarec/internal/config"
	"mediarec/internal/suggest"
	"mediarec/internal/tmdb"
	"mediarec/web"
	"mediarec/web/backend"
)

func main() {
	cfgPath := flag.String("config", "config.ini", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, tmdb.WithBaseURL(cfg.TMDB.BaseURL), tmdb.WithLanguage(cfg.TMDB.Language))
	if err != nil {
		log.Fatalf("tmdb client: %v", err)
	}

	suggester, err := suggest.NewFromFile(cfg.IndexPath(), cfg.Family.Keywords, cfg.Match.Cutoff)
	if err != nil {
		log.Fatalf("load title index: %v", err)
	}
	if !suggester.Enabled() {
		log.Println("No title index found; fuzzy suggestions disabled")
	}

	api := backend.NewAPI(client, suggester)

	mux := http.NewServeMux()
	web.HandleAPI(mux, api)
	web.RunServer(mux, cfg.Server.Addr)
}
