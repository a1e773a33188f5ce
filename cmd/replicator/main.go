// cmd/replicator/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tamzrod/modal-replicator/internal/config"
	"github.com/tamzrod/modal-replicator/internal/poller"
	"github.com/tamzrod/modal-replicator/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: replicator <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	closeLog := setupLogging(cfg.Replicator.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	statusEndpoint := cfg.Replicator.StatusMemory.Endpoint

	// --------------------
	// Build per-unit pipelines
	// --------------------

	for _, unit := range cfg.Replicator.Units {

		// ---- poller ----
		p, closePoller, err := poller.Build(unit)
		if err != nil {
			log.Fatalf("poller build failed (unit=%s): %v", unit.ID, err)
		}
		defer closePoller()

		// ---- writer plan ----
		plan, err := writer.BuildPlan(unit, statusEndpoint)
		if err != nil {
			log.Fatalf("writer plan failed (unit=%s): %v", unit.ID, err)
		}

		// ---- writer clients (RECORDS + STATUS) ----
		clients, closeWriters, err := writer.BuildEndpointClients(unit, statusEndpoint)
		if err != nil {
			log.Fatalf("writer clients failed (unit=%s): %v", unit.ID, err)
		}
		defer closeWriters()

		recordWriter := writer.New(plan, clients)
		statusWriter, statusEnabled := writer.NewStatusWriter(plan, clients)

		// ---- channel between poller and writers ----
		out := make(chan poller.PollResult)

		o := newOrchestrator(unit.ID, recordWriter, statusWriter)
		go o.run(ctx, out)

		// poller producer
		go p.Run(ctx, out)

		log.Printf("unit %s: %d queries -> %d targets (status=%v)",
			unit.ID, len(unit.Queries), len(unit.Targets), statusEnabled)
	}

	<-ctx.Done()
	log.Printf("shutting down")
}
