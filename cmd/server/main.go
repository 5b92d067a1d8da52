// Package main implements the entry point for the eholdings API server,
// which exposes a tenant's EBSCO knowledge base holdings as JSON:API
// resources.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	app, err := newApplication(*configPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
