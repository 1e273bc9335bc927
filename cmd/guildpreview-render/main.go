// guildpreview-render prints a Discord server template's roles and channel
// tree to the terminal.
package main

import (
	"context"
	"fmt"
	"guildpreview/internal/di"
	"guildpreview/internal/models"
	"guildpreview/internal/structures"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: guildpreview-render [flags] <templateId>\n\nFlags:\n")
	flagSet.PrintDefaults()
}

func run() error {
	_ = godotenv.Load()

	var flags structures.CliFlags
	flagSet := pflag.NewFlagSet("guildpreview-render", pflag.ContinueOnError)
	flagSet.StringVarP(&flags.ConfigPath, "config", "c", "", "path to the YAML config file")
	flagSet.BoolVarP(&flags.DebugMode, "debug", "d", false, "log at debug level")
	flagSet.Usage = func() { printHelp(flagSet) }

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	args := flagSet.Args()
	if len(args) != 1 || args[0] == "" {
		printHelp(flagSet)
		return &models.MissingParameterError{Name: "templateId"}
	}

	renderer, err := di.InitRenderer(&flags)
	if err != nil {
		return err
	}
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := renderer.Render(ctx, args[0], os.Stdout); err != nil {
		return fmt.Errorf("template %s: %w", args[0], err)
	}
	return nil
}
