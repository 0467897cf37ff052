package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dparker/statlab/internal/api"
	"github.com/dparker/statlab/internal/config"
	"github.com/dparker/statlab/internal/results"
	"github.com/dparker/statlab/internal/stattest"
)

func main() {
	cfg := config.Load()

	fmt.Println("statlab - computational statistics dashboard")
	fmt.Printf("Starting server on :%s...\n", cfg.Server.Port)

	store := results.New()
	tests := stattest.New()
	handler := api.New(cfg, store, tests)

	router := handler.SetupRouter()
	router.NotFoundHandler = http.HandlerFunc(api.NotFoundHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Fatal(srv.ListenAndServe())
}
