// guildpreview serves previews of Discord server templates over HTTP.
package main

import (
	"fmt"
	"guildpreview/internal/di"
	"guildpreview/internal/structures"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var flags structures.CliFlags
	flagSet := pflag.NewFlagSet("guildpreview", pflag.ContinueOnError)
	flagSet.StringVarP(&flags.ConfigPath, "config", "c", "", "path to the YAML config file (defaults and environment only when empty)")
	flagSet.BoolVarP(&flags.DebugMode, "debug", "d", false, "log every channel to stderr at debug level")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	app, err := di.InitApp(&flags)
	if err != nil {
		return err
	}
	return app.Run()
}
