package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"haircut/internal/app"
	"haircut/internal/config"
	"haircut/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("haircut", pflag.ExitOnError)
	configDir := fs.String("config", ".", "directory containing "+config.FileName)
	if err := config.BindFlags(fs); err != nil {
		panic(err)
	}
	_ = fs.Parse(os.Args[1:])

	settings, err := config.Load(*configDir)
	// The log level comes from settings, so a config error is logged at the default level.
	log := logging.New(os.Stderr, settings.LogLevel, !isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		log.Fatal().Err(err).Str("dir", *configDir).Msg("loading config")
	}

	if err := app.RunDesktop(settings, log); err != nil {
		log.Fatal().Err(err).Msg("haircut exited")
	}
}
