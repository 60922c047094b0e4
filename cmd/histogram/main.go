// Package main prints the character histogram of the example word.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	histogramcmd "github.com/EsmerlynG/part05-16-histogram/internal/cmd/histogram"
	"github.com/EsmerlynG/part05-16-histogram/internal/platform/config"
)

func main() {
	cfg, err := histogramcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[HISTOGRAM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := histogramcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("histogram: %v", err)
	}
}
