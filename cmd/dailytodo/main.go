package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/idilsaglam/dailytodo/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file path (default: platform config dir, or $"+cli.ConfigEnv+")")
	seedPath := flag.String("seed", "", "JSON seed file with cards and tags")
	theme := flag.String("theme", "", "color theme: classic | neon | mono")
	logLevel := flag.String("log-level", "", "log level: debug | info | warn | error")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := cli.Run(ctx, flag.Args(), cli.Options{
		ConfigPath: *configPath,
		SeedPath:   *seedPath,
		Theme:      *theme,
		LogLevel:   *logLevel,
		NoColor:    *noColor,
	})
	stop()
	os.Exit(code)
}
