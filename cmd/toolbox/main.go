// Package main starts the toolbox web service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	toolboxcmd "github.com/louisbranch/toolbox/internal/cmd/toolbox"
	"github.com/louisbranch/toolbox/internal/platform/config"
)

func main() {
	cfg, err := toolboxcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := toolboxcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("serve: %v", err)
	}
}
