package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bobmcallan/timcheck/internal/app"
	"github.com/bobmcallan/timcheck/internal/common"
)

func main() {
	configPath := flag.String("config", "", "path to timcheck.toml (default: $TIMCHECK_CONFIG)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		common.ResolveVersion()
		fmt.Println(common.FullVersion())
		return
	}

	a, err := app.NewApp(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary := a.Run(ctx, os.Stdout, os.Stderr)
	if !summary.AllPassed() {
		stop()
		os.Exit(1)
	}
}
