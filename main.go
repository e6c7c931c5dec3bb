package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lotto/cmd"
)

func main() {
	// Check for analysis subcommand
	if len(os.Args) > 1 && os.Args[1] == "analyze" {
		if err := cmd.Analyze(os.Args[2:], os.Stdout); err != nil {
			log.Fatal("Analysis error:", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down...")
		cancel()
	}()

	if err := cmd.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal("Application error:", err)
	}
}
