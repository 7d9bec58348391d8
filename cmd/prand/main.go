// Package main contains entry point logic of the prand utility
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	l "github.com/sot-tech/prand/pkg/log"
)

const (
	logOutArg    = "logOut"
	logLevelArg  = "logLevel"
	logPrettyArg = "logPretty"
	logColorsArg = "logColored"
	configArg    = "config"
	quickArg     = "quick"
)

func main() {
	logOut := flag.String(logOutArg, "stderr", "output for logging, might be 'stderr', 'stdout' or file path")
	logLevel := flag.String(logLevelArg, "warn", "logging level: trace, debug, info, warn, error, fatal, panic")
	logPretty := flag.Bool(logPrettyArg, false, "enable log pretty print. if not set, log outputs json")
	logColored := flag.Bool(logColorsArg, runtime.GOOS == "windows", "enable log coloring. used only if set 'logPretty'")
	configPath := flag.String(configArg, "", "location of configuration file")
	quick := flag.Bool(quickArg, false, "quick start without config file: random-seeded xoshiro256** word stream")
	flag.Parse()

	if err := l.ConfigureLogger(*logOut, *logLevel, *logPretty, *logColored); err != nil {
		log.Fatal("unable to configure logger: ", err)
	}
	defer l.Close()

	cfg := QuickConfig
	if !*quick {
		var err error
		if cfg, err = ParseConfigFile(*configPath); err != nil {
			l.Fatal().Err(err).Msg("failed to read config")
		}
	}

	r, err := NewRunner(cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to configure runner")
	}
	defer r.Dispose()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = r.Run(ctx, os.Stdout); err != nil {
		l.Error().Err(err).Msg("run failed")
	}
}
