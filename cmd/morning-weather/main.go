package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/jfgoncalves/morning-weather/internal/bootstrap"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	app, err := bootstrap.NewBootstrap(opts)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func parseOptions(args []string, output io.Writer) (bootstrap.Options, error) {
	fs := flag.NewFlagSet("morning-weather", flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "", "path to the YAML configuration file")
	serve := fs.Bool("serve", false, "stay resident and run on the configured cron schedule")
	check := fs.Bool("check", false, "validate configuration and icon assets, then exit")

	if err := fs.Parse(args); err != nil {
		return bootstrap.Options{}, err
	}
	if fs.NArg() > 0 {
		return bootstrap.Options{}, errors.New("unexpected arguments: " + fs.Arg(0))
	}
	if *serve && *check {
		return bootstrap.Options{}, errors.New("-serve and -check are mutually exclusive")
	}

	opts := bootstrap.Options{ConfigPath: *configPath, Mode: bootstrap.ModeOnce}
	switch {
	case *serve:
		opts.Mode = bootstrap.ModeServe
	case *check:
		opts.Mode = bootstrap.ModeCheck
	}
	return opts, nil
}
