package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	whcmd "github.com/louisbranch/whiskey-hollow/internal/cmd/whiskeyhollow"
)

func main() {
	cfg, err := whcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := whcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
