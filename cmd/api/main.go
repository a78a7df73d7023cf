package main

import (
	"apod-manager/internal/adapter"
	"apod-manager/internal/config"
	"apod-manager/internal/core"
	"apod-manager/pkg/http_client"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := adapter.NewApodClient(cfg.Apod.BaseURL, cfg.Apod.APIKey, http_client.CreateHTTPClient(cfg.Apod.Timeout))
	svc := core.NewService(client, cfg.Apod.Thumbs)
	h := adapter.NewHandler(svc, logger)

	r := chi.NewRouter()
	r.Use(adapter.RequestLogger(logger))
	h.Routes(r)

	log.Printf("listening on %s", cfg.HTTP.Addr())
	if err := http.ListenAndServe(cfg.HTTP.Addr(), r); err != nil {
		log.Fatal(err)
	}
}
