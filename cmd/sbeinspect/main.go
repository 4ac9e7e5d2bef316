package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rawbytedev/sbewire/internal/logger"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals holds the flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	g := &globals{}
	return &cli.Command{
		Name:      "sbeinspect",
		Usage:     "Encode, capture and inspect SBE message buffers",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to config.yaml (default: user config dir)", Destination: &g.configPath},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Destination: &g.logLevel},
			&cli.StringFlag{Name: "log-format", Usage: "text or json", Destination: &g.logFormat},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			sampleCmd(g),
			dumpCmd(g),
			profileCmd(g),
		},
	}
}

// setup loads the config file and installs the logger in ctx. Flags win
// over the file.
func (g *globals) setup(ctx context.Context, cmd *cli.Command) (context.Context, Config, error) {
	cfg, err := LoadConfig(g.configPath)
	if err != nil {
		return ctx, cfg, cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	level := firstSet(g.logLevel, cfg.LogLevel, "info")
	format := firstSet(g.logFormat, cfg.LogFormat, "text")
	log := logger.Open(cmd.Root().ErrWriter, format, level)
	return logger.WithContext(ctx, log), cfg, nil
}

func firstSet(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
