package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prettylog/internal/app"
	"prettylog/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var flags config.Flags
	configPath := flag.String("config", "", "override config path (optional)")
	flag.StringVar(&flags.Color, "color", "", "colorize output: on, off, or auto (default auto)")
	flag.StringVar(&flags.TimestampFormat, "timestamp-format", "", "numeric timestamp handling: auto, seconds, millis, or raw (default auto)")
	flag.StringVar(&flags.TimestampFormat, "tsfmt", "", "alias for -timestamp-format")
	flag.StringVar(&flags.TimestampKeys, "timestamp-keys", "", "comma-separated candidate keys for the timestamp field")
	flag.StringVar(&flags.LevelKeys, "level-keys", "", "comma-separated candidate keys for the level field")
	flag.StringVar(&flags.MessageKeys, "message-keys", "", "comma-separated candidate keys for the message field")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Flags: flags}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "prettylog: %v\n", err)
		return 1
	}
	return 0
}
